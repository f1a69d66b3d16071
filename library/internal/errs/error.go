package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound   Kind = "NotFound"
	KindConflict   Kind = "Conflict"
	KindValidation Kind = "Validation"
)

type Reason string

const (
	ReasonMemberNotFound          Reason = "MEMBER_NOT_FOUND"
	ReasonBookNotFound            Reason = "BOOK_NOT_FOUND"
	ReasonStaffNotFound           Reason = "STAFF_NOT_FOUND"
	ReasonBorrowingRecordNotFound Reason = "BORROWING_RECORD_NOT_FOUND"
	ReasonReservationNotFound     Reason = "RESERVATION_NOT_FOUND"
	ReasonReferenceNotFound       Reason = "REFERENCE_NOT_FOUND"

	ReasonEmailTaken           Reason = "EMAIL_ALREADY_REGISTERED"
	ReasonISBNTaken            Reason = "ISBN_ALREADY_EXISTS"
	ReasonAlreadyBorrowed      Reason = "ALREADY_BORROWED"
	ReasonDuplicateReservation Reason = "DUPLICATE_RESERVATION"
	ReasonReferenced           Reason = "ENTITY_REFERENCED"

	ReasonInvalidInput Reason = "INVALID_INPUT"
)

// Error is a domain outcome callers branch on by Kind or Reason.
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// Wrap keeps the reason of e and attaches the cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Reason: e.Reason, Message: e.Message, Err: err}
}

func New(kind Kind, reason Reason, msg string) *Error {
	return &Error{Kind: kind, Reason: reason, Message: msg}
}

var (
	ErrMemberNotFound          = New(KindNotFound, ReasonMemberNotFound, "Member not found")
	ErrBookNotFound            = New(KindNotFound, ReasonBookNotFound, "Book not found")
	ErrStaffNotFound           = New(KindNotFound, ReasonStaffNotFound, "Staff not found")
	ErrBorrowingRecordNotFound = New(KindNotFound, ReasonBorrowingRecordNotFound, "Borrowing record not found")
	ErrReservationNotFound     = New(KindNotFound, ReasonReservationNotFound, "Reservation not found")
	ErrReferenceNotFound       = New(KindNotFound, ReasonReferenceNotFound, "Referenced book or member not found")

	ErrEmailTaken           = New(KindConflict, ReasonEmailTaken, "Email already registered")
	ErrISBNTaken            = New(KindConflict, ReasonISBNTaken, "Book with this ISBN already exists")
	ErrAlreadyBorrowed      = New(KindConflict, ReasonAlreadyBorrowed, "Book is already borrowed")
	ErrDuplicateReservation = New(KindConflict, ReasonDuplicateReservation, "Reservation already exists")
	ErrReferenced           = New(KindConflict, ReasonReferenced, "Entity is referenced by borrowing records or reservations")
)

func Validation(err error) *Error {
	return &Error{Kind: KindValidation, Reason: ReasonInvalidInput, Message: "invalid input", Err: err}
}

// As returns the domain error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of a domain error, or "" for internal faults.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}
