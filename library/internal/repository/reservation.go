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

var reservationColumns = []string{
	"reservation_id", "book_id", "member_id", "reservation_date", "status", "created_at", "updated_at",
}

func reservationErr(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return errs.ErrDuplicateReservation.Wrap(err)
	case database.IsForeignKeyViolation(err):
		return errs.ErrReferenceNotFound.Wrap(err)
	}
	return err
}

func (q *queries) CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	now := q.now()
	b := q.qb.Insert(reservationsTableName).
		Columns("book_id", "member_id", "reservation_date", "status", "created_at", "updated_at").
		Values(rsv.BookID, rsv.MemberID, rsv.ReservationDate, rsv.Status, now, now).
		Suffix(returning(reservationColumns))

	var created model.Reservation
	if err := q.insert(ctx, &created, b); err != nil {
		if mapped := reservationErr(err); mapped != err {
			return model.Reservation{}, mapped
		}
		q.log.Error("CreateReservation",
			zap.Int64("book_id", rsv.BookID), zap.Int64("member_id", rsv.MemberID), zap.Error(err))
		return model.Reservation{}, errors.Wrap(err, "insert reservation")
	}
	return created, nil
}

func (q *queries) GetReservation(ctx context.Context, id int64) (model.Reservation, error) {
	return q.getReservation(ctx, id, false)
}

func (q *queries) getReservation(ctx context.Context, id int64, lock bool) (model.Reservation, error) {
	b := q.qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"reservation_id": id})
	if lock {
		b = q.forUpdate(b)
	}
	var rsv model.Reservation
	if err := q.get(ctx, &rsv, b); err != nil {
		return model.Reservation{}, noRows(err, errs.ErrReservationNotFound)
	}
	return rsv, nil
}

func (q *queries) ListReservations(ctx context.Context, p model.ListParams) ([]model.Reservation, error) {
	b := q.qb.Select(reservationColumns...).
		From(reservationsTableName).
		OrderBy("reservation_id")

	reservations := make([]model.Reservation, 0)
	if err := q.list(ctx, &reservations, b, p); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (q *queries) UpdateReservation(ctx context.Context, id int64, patch model.ReservationPatch) (model.Reservation, error) {
	rsv, err := q.getReservation(ctx, id, true)
	if err != nil {
		return model.Reservation{}, err
	}
	patch.Apply(&rsv)

	b := q.qb.Update(reservationsTableName).
		SetMap(map[string]any{
			"book_id":          rsv.BookID,
			"member_id":        rsv.MemberID,
			"reservation_date": rsv.ReservationDate,
			"status":           rsv.Status,
			"updated_at":       q.now(),
		}).
		Where(sq.Eq{"reservation_id": id}).
		Suffix(returning(reservationColumns))

	var updated model.Reservation
	if err = q.update(ctx, &updated, b); err != nil {
		if mapped := reservationErr(err); mapped != err {
			return model.Reservation{}, mapped
		}
		return model.Reservation{}, errors.Wrap(noRows(err, errs.ErrReservationNotFound), "update reservation")
	}
	return updated, nil
}

// HasPendingReservation reports whether the member already holds a pending
// reservation for the book.
func (q *queries) HasPendingReservation(ctx context.Context, bookID, memberID int64) (bool, error) {
	return q.exists(ctx, q.qb.Select("count(*)").
		From(reservationsTableName).
		Where(sq.Eq{"book_id": bookID, "member_id": memberID, "status": model.ReservationPending}))
}
