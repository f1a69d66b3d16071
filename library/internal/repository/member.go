package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/pkg/database"
)

var memberColumns = []string{
	"member_id", "name", "email", "phone", "address",
	"membership_date", "membership_status", "created_at", "updated_at",
}

func (q *queries) CreateMember(ctx context.Context, m model.Member) (model.Member, error) {
	now := q.now()
	b := q.qb.Insert(membersTableName).
		Columns("name", "email", "phone", "address", "membership_date", "membership_status", "created_at", "updated_at").
		Values(m.Name, m.Email, m.Phone, m.Address, m.MembershipDate, m.MembershipStatus, now, now).
		Suffix(returning(memberColumns))

	var created model.Member
	if err := q.insert(ctx, &created, b); err != nil {
		if database.IsUniqueViolation(err) {
			return model.Member{}, errs.ErrEmailTaken.Wrap(err)
		}
		q.log.Error("CreateMember", zap.String("email", m.Email), zap.Error(err))
		return model.Member{}, errors.Wrap(err, "insert member")
	}
	return created, nil
}

func (q *queries) GetMember(ctx context.Context, id int64) (model.Member, error) {
	return q.getMember(ctx, id, false)
}

func (q *queries) getMember(ctx context.Context, id int64, lock bool) (model.Member, error) {
	b := q.qb.Select(memberColumns...).
		From(membersTableName).
		Where(sq.Eq{"member_id": id})
	if lock {
		b = q.forUpdate(b)
	}
	var m model.Member
	if err := q.get(ctx, &m, b); err != nil {
		return model.Member{}, noRows(err, errs.ErrMemberNotFound)
	}
	return m, nil
}

func (q *queries) ListMembers(ctx context.Context, p model.ListParams) ([]model.Member, error) {
	b := q.qb.Select(memberColumns...).
		From(membersTableName).
		OrderBy("member_id")

	members := make([]model.Member, 0)
	if err := q.list(ctx, &members, b, p); err != nil {
		return nil, err
	}
	return members, nil
}

func (q *queries) UpdateMember(ctx context.Context, id int64, patch model.MemberPatch) (model.Member, error) {
	m, err := q.getMember(ctx, id, true)
	if err != nil {
		return model.Member{}, err
	}
	patch.Apply(&m)

	b := q.qb.Update(membersTableName).
		SetMap(map[string]any{
			"name":              m.Name,
			"email":             m.Email,
			"phone":             m.Phone,
			"address":           m.Address,
			"membership_status": m.MembershipStatus,
			"updated_at":        q.now(),
		}).
		Where(sq.Eq{"member_id": id}).
		Suffix(returning(memberColumns))

	var updated model.Member
	if err = q.update(ctx, &updated, b); err != nil {
		if database.IsUniqueViolation(err) {
			return model.Member{}, errs.ErrEmailTaken.Wrap(err)
		}
		return model.Member{}, errors.Wrap(noRows(err, errs.ErrMemberNotFound), "update member")
	}
	return updated, nil
}

func (q *queries) DeleteMember(ctx context.Context, id int64) (bool, error) {
	ok, err := q.delete(ctx, q.qb.Delete(membersTableName).Where(sq.Eq{"member_id": id}))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, errs.ErrReferenced.Wrap(err)
		}
		return false, errors.Wrap(err, "delete member")
	}
	return ok, nil
}
