package model

import (
	"github.com/shopspring/decimal"
)

type BorrowingStatus string

const (
	BorrowingBorrowed BorrowingStatus = "Borrowed"
	BorrowingReturned BorrowingStatus = "Returned"
	BorrowingOverdue  BorrowingStatus = "Overdue"
)

// BorrowingRecord is an active loan while ReturnDate is nil.
type BorrowingRecord struct {
	ID         int64           `json:"record_id" db:"record_id"`
	BookID     int64           `json:"book_id" db:"book_id"`
	MemberID   int64           `json:"member_id" db:"member_id"`
	BorrowDate Date            `json:"borrow_date" db:"borrow_date"`
	DueDate    Date            `json:"due_date" db:"due_date"`
	ReturnDate *Date           `json:"return_date" db:"return_date"`
	FineAmount decimal.Decimal `json:"fine_amount" db:"fine_amount"`
	Status     BorrowingStatus `json:"status" db:"status"`
	Audit
}

func (r BorrowingRecord) Active() bool {
	return r.ReturnDate == nil
}

type CreateBorrowingRecordRequest struct {
	BookID     int64            `json:"book_id" validate:"required,gt=0"`
	MemberID   int64            `json:"member_id" validate:"required,gt=0"`
	BorrowDate Date             `json:"borrow_date" validate:"required"`
	DueDate    Date             `json:"due_date" validate:"required"`
	ReturnDate *Date            `json:"return_date"`
	FineAmount *decimal.Decimal `json:"fine_amount" validate:"omitempty,nonneg_decimal"`
	Status     BorrowingStatus  `json:"status" validate:"omitempty,oneof=Borrowed Returned Overdue"`
}

func (r CreateBorrowingRecordRequest) NewRecord() BorrowingRecord {
	rec := BorrowingRecord{
		BookID:     r.BookID,
		MemberID:   r.MemberID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.DueDate,
		ReturnDate: r.ReturnDate,
		FineAmount: decimal.Zero,
		Status:     r.Status,
	}
	if r.FineAmount != nil {
		rec.FineAmount = *r.FineAmount
	}
	if rec.Status == "" {
		rec.Status = BorrowingBorrowed
	}
	return rec
}

type BorrowingRecordPatch struct {
	BookID     Field[int64]           `json:"book_id" validate:"omitempty,gt=0"`
	MemberID   Field[int64]           `json:"member_id" validate:"omitempty,gt=0"`
	BorrowDate Field[Date]            `json:"borrow_date"`
	DueDate    Field[Date]            `json:"due_date"`
	ReturnDate Field[*Date]           `json:"return_date"`
	FineAmount Field[decimal.Decimal] `json:"fine_amount" validate:"omitempty,nonneg_decimal"`
	Status     Field[BorrowingStatus] `json:"status" validate:"omitempty,oneof=Borrowed Returned Overdue"`
}

func (p BorrowingRecordPatch) Apply(r *BorrowingRecord) bool {
	changed := apply(&r.BookID, p.BookID)
	changed = apply(&r.MemberID, p.MemberID) || changed
	changed = apply(&r.BorrowDate, p.BorrowDate) || changed
	changed = apply(&r.DueDate, p.DueDate) || changed
	changed = apply(&r.ReturnDate, p.ReturnDate) || changed
	changed = apply(&r.FineAmount, p.FineAmount) || changed
	changed = apply(&r.Status, p.Status) || changed
	return changed
}
