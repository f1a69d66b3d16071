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

var borrowingColumns = []string{
	"record_id", "book_id", "member_id", "borrow_date", "due_date", "return_date",
	"fine_amount", "status", "created_at", "updated_at",
}

// borrowingErr maps constraint failures of a loan write; the partial unique
// index on active loans surfaces as ErrAlreadyBorrowed.
func borrowingErr(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return errs.ErrAlreadyBorrowed.Wrap(err)
	case database.IsForeignKeyViolation(err):
		return errs.ErrReferenceNotFound.Wrap(err)
	}
	return err
}

func (q *queries) CreateBorrowingRecord(ctx context.Context, rec model.BorrowingRecord) (model.BorrowingRecord, error) {
	now := q.now()
	b := q.qb.Insert(borrowingTableName).
		Columns("book_id", "member_id", "borrow_date", "due_date", "return_date",
			"fine_amount", "status", "created_at", "updated_at").
		Values(rec.BookID, rec.MemberID, rec.BorrowDate, rec.DueDate, rec.ReturnDate,
			rec.FineAmount, rec.Status, now, now).
		Suffix(returning(borrowingColumns))

	var created model.BorrowingRecord
	if err := q.insert(ctx, &created, b); err != nil {
		if mapped := borrowingErr(err); mapped != err {
			return model.BorrowingRecord{}, mapped
		}
		q.log.Error("CreateBorrowingRecord",
			zap.Int64("book_id", rec.BookID), zap.Int64("member_id", rec.MemberID), zap.Error(err))
		return model.BorrowingRecord{}, errors.Wrap(err, "insert borrowing record")
	}
	return created, nil
}

func (q *queries) GetBorrowingRecord(ctx context.Context, id int64) (model.BorrowingRecord, error) {
	return q.getBorrowingRecord(ctx, id, false)
}

func (q *queries) getBorrowingRecord(ctx context.Context, id int64, lock bool) (model.BorrowingRecord, error) {
	b := q.qb.Select(borrowingColumns...).
		From(borrowingTableName).
		Where(sq.Eq{"record_id": id})
	if lock {
		b = q.forUpdate(b)
	}
	var rec model.BorrowingRecord
	if err := q.get(ctx, &rec, b); err != nil {
		return model.BorrowingRecord{}, noRows(err, errs.ErrBorrowingRecordNotFound)
	}
	return rec, nil
}

func (q *queries) ListBorrowingRecords(ctx context.Context, p model.ListParams) ([]model.BorrowingRecord, error) {
	b := q.qb.Select(borrowingColumns...).
		From(borrowingTableName).
		OrderBy("record_id")

	records := make([]model.BorrowingRecord, 0)
	if err := q.list(ctx, &records, b, p); err != nil {
		return nil, err
	}
	return records, nil
}

func (q *queries) UpdateBorrowingRecord(ctx context.Context, id int64, patch model.BorrowingRecordPatch) (model.BorrowingRecord, error) {
	rec, err := q.getBorrowingRecord(ctx, id, true)
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	patch.Apply(&rec)

	b := q.qb.Update(borrowingTableName).
		SetMap(map[string]any{
			"book_id":     rec.BookID,
			"member_id":   rec.MemberID,
			"borrow_date": rec.BorrowDate,
			"due_date":    rec.DueDate,
			"return_date": rec.ReturnDate,
			"fine_amount": rec.FineAmount,
			"status":      rec.Status,
			"updated_at":  q.now(),
		}).
		Where(sq.Eq{"record_id": id}).
		Suffix(returning(borrowingColumns))

	var updated model.BorrowingRecord
	if err = q.update(ctx, &updated, b); err != nil {
		if mapped := borrowingErr(err); mapped != err {
			return model.BorrowingRecord{}, mapped
		}
		return model.BorrowingRecord{}, errors.Wrap(noRows(err, errs.ErrBorrowingRecordNotFound), "update borrowing record")
	}
	return updated, nil
}

// HasActiveLoan reports whether a record without a return date exists for the book.
func (q *queries) HasActiveLoan(ctx context.Context, bookID int64) (bool, error) {
	return q.exists(ctx, q.qb.Select("count(*)").
		From(borrowingTableName).
		Where(sq.Eq{"book_id": bookID, "return_date": nil}))
}
