package service

import (
	"context"

	"github.com/Astemirdum/library-records/library/internal/events"
	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/library/internal/repository"
	"github.com/Astemirdum/library-records/library/internal/rules"
)

// CreateBorrowingRecord checks and inserts in one transaction; the unique
// index on active loans rejects whatever slips past the check.
func (s *Service) CreateBorrowingRecord(ctx context.Context, req model.CreateBorrowingRecordRequest) (rec model.BorrowingRecord, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		if err = rules.CheckBorrow(ctx, tx, req.BookID, req.MemberID); err != nil {
			return err
		}
		rec, err = tx.CreateBorrowingRecord(ctx, req.NewRecord())
		return err
	})
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	s.publish(ctx, events.BorrowingRecordEvent(events.BorrowingRecordCreated, rec))
	return rec, nil
}

func (s *Service) GetBorrowingRecord(ctx context.Context, id int64) (model.BorrowingRecord, error) {
	return s.repo.GetBorrowingRecord(ctx, id)
}

func (s *Service) ListBorrowingRecords(ctx context.Context, p model.ListParams) ([]model.BorrowingRecord, error) {
	return s.repo.ListBorrowingRecords(ctx, p)
}

func (s *Service) UpdateBorrowingRecord(ctx context.Context, id int64, patch model.BorrowingRecordPatch) (rec model.BorrowingRecord, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		if patch.BookID.Set || patch.MemberID.Set {
			cur, err := tx.GetBorrowingRecord(ctx, id)
			if err != nil {
				return err
			}
			bookID, memberID := pick(patch.BookID, cur.BookID), pick(patch.MemberID, cur.MemberID)
			if err = rules.CheckReferences(ctx, tx, bookID, memberID); err != nil {
				return err
			}
		}
		rec, err = tx.UpdateBorrowingRecord(ctx, id, patch)
		return err
	})
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	s.publish(ctx, events.BorrowingRecordEvent(events.BorrowingRecordUpdated, rec))
	return rec, nil
}

func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (rsv model.Reservation, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		if err = rules.CheckReserve(ctx, tx, req.BookID, req.MemberID); err != nil {
			return err
		}
		rsv, err = tx.CreateReservation(ctx, req.NewReservation())
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, events.ReservationEvent(events.ReservationCreated, rsv))
	return rsv, nil
}

func (s *Service) GetReservation(ctx context.Context, id int64) (model.Reservation, error) {
	return s.repo.GetReservation(ctx, id)
}

func (s *Service) ListReservations(ctx context.Context, p model.ListParams) ([]model.Reservation, error) {
	return s.repo.ListReservations(ctx, p)
}

func (s *Service) UpdateReservation(ctx context.Context, id int64, patch model.ReservationPatch) (rsv model.Reservation, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		if patch.BookID.Set || patch.MemberID.Set {
			cur, err := tx.GetReservation(ctx, id)
			if err != nil {
				return err
			}
			bookID, memberID := pick(patch.BookID, cur.BookID), pick(patch.MemberID, cur.MemberID)
			if err = rules.CheckReferences(ctx, tx, bookID, memberID); err != nil {
				return err
			}
		}
		rsv, err = tx.UpdateReservation(ctx, id, patch)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, events.ReservationEvent(events.ReservationUpdated, rsv))
	return rsv, nil
}

func pick[T any](f model.Field[T], cur T) T {
	if f.Set {
		return f.Value
	}
	return cur
}
