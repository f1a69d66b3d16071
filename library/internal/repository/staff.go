package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/pkg/database"
)

var staffColumns = []string{
	"staff_id", "name", "email", "phone", "role", "hire_date", "created_at", "updated_at",
}

func (q *queries) CreateStaff(ctx context.Context, s model.Staff) (model.Staff, error) {
	now := q.now()
	b := q.qb.Insert(staffTableName).
		Columns("name", "email", "phone", "role", "hire_date", "created_at", "updated_at").
		Values(s.Name, s.Email, s.Phone, s.Role, s.HireDate, now, now).
		Suffix(returning(staffColumns))

	var created model.Staff
	if err := q.insert(ctx, &created, b); err != nil {
		if database.IsUniqueViolation(err) {
			return model.Staff{}, errs.ErrEmailTaken.Wrap(err)
		}
		return model.Staff{}, errors.Wrap(err, "insert staff")
	}
	return created, nil
}

func (q *queries) GetStaff(ctx context.Context, id int64) (model.Staff, error) {
	return q.getStaff(ctx, id, false)
}

func (q *queries) getStaff(ctx context.Context, id int64, lock bool) (model.Staff, error) {
	b := q.qb.Select(staffColumns...).
		From(staffTableName).
		Where(sq.Eq{"staff_id": id})
	if lock {
		b = q.forUpdate(b)
	}
	var s model.Staff
	if err := q.get(ctx, &s, b); err != nil {
		return model.Staff{}, noRows(err, errs.ErrStaffNotFound)
	}
	return s, nil
}

func (q *queries) ListStaff(ctx context.Context, p model.ListParams) ([]model.Staff, error) {
	b := q.qb.Select(staffColumns...).
		From(staffTableName).
		OrderBy("staff_id")

	staff := make([]model.Staff, 0)
	if err := q.list(ctx, &staff, b, p); err != nil {
		return nil, err
	}
	return staff, nil
}

func (q *queries) UpdateStaff(ctx context.Context, id int64, patch model.StaffPatch) (model.Staff, error) {
	s, err := q.getStaff(ctx, id, true)
	if err != nil {
		return model.Staff{}, err
	}
	patch.Apply(&s)

	b := q.qb.Update(staffTableName).
		SetMap(map[string]any{
			"name":       s.Name,
			"email":      s.Email,
			"phone":      s.Phone,
			"role":       s.Role,
			"hire_date":  s.HireDate,
			"updated_at": q.now(),
		}).
		Where(sq.Eq{"staff_id": id}).
		Suffix(returning(staffColumns))

	var updated model.Staff
	if err = q.update(ctx, &updated, b); err != nil {
		if database.IsUniqueViolation(err) {
			return model.Staff{}, errs.ErrEmailTaken.Wrap(err)
		}
		return model.Staff{}, errors.Wrap(noRows(err, errs.ErrStaffNotFound), "update staff")
	}
	return updated, nil
}
