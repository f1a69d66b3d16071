// Package rules holds the borrowing and reservation consistency checks.
// Both checks must run inside the transaction that performs the write.
package rules

import (
	"context"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
)

type Reader interface {
	LockBook(ctx context.Context, id int64) (model.Book, error)
	GetMember(ctx context.Context, id int64) (model.Member, error)
	HasActiveLoan(ctx context.Context, bookID int64) (bool, error)
	HasPendingReservation(ctx context.Context, bookID, memberID int64) (bool, error)
}

// CheckReferences verifies that both the book and the member exist, book first.
func CheckReferences(ctx context.Context, r Reader, bookID, memberID int64) error {
	if _, err := r.LockBook(ctx, bookID); err != nil {
		return err
	}
	if _, err := r.GetMember(ctx, memberID); err != nil {
		return err
	}
	return nil
}

// CheckBorrow allows a new loan only when the book has no record without a return date.
// Missing references are reported before an active loan.
func CheckBorrow(ctx context.Context, r Reader, bookID, memberID int64) error {
	if err := CheckReferences(ctx, r, bookID, memberID); err != nil {
		return err
	}
	active, err := r.HasActiveLoan(ctx, bookID)
	if err != nil {
		return err
	}
	if active {
		return errs.ErrAlreadyBorrowed
	}
	return nil
}

// CheckReserve allows at most one pending reservation per book and member.
func CheckReserve(ctx context.Context, r Reader, bookID, memberID int64) error {
	if err := CheckReferences(ctx, r, bookID, memberID); err != nil {
		return err
	}
	pending, err := r.HasPendingReservation(ctx, bookID, memberID)
	if err != nil {
		return err
	}
	if pending {
		return errs.ErrDuplicateReservation
	}
	return nil
}
