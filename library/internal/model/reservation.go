package model

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationFulfilled ReservationStatus = "Fulfilled"
	ReservationCancelled ReservationStatus = "Cancelled"
)

type Reservation struct {
	ID              int64             `json:"reservation_id" db:"reservation_id"`
	BookID          int64             `json:"book_id" db:"book_id"`
	MemberID        int64             `json:"member_id" db:"member_id"`
	ReservationDate Date              `json:"reservation_date" db:"reservation_date"`
	Status          ReservationStatus `json:"status" db:"status"`
	Audit
}

type CreateReservationRequest struct {
	BookID          int64             `json:"book_id" validate:"required,gt=0"`
	MemberID        int64             `json:"member_id" validate:"required,gt=0"`
	ReservationDate Date              `json:"reservation_date" validate:"required"`
	Status          ReservationStatus `json:"status" validate:"omitempty,oneof=Pending Fulfilled Cancelled"`
}

func (r CreateReservationRequest) NewReservation() Reservation {
	rsv := Reservation{
		BookID:          r.BookID,
		MemberID:        r.MemberID,
		ReservationDate: r.ReservationDate,
		Status:          r.Status,
	}
	if rsv.Status == "" {
		rsv.Status = ReservationPending
	}
	return rsv
}

type ReservationPatch struct {
	BookID          Field[int64]             `json:"book_id" validate:"omitempty,gt=0"`
	MemberID        Field[int64]             `json:"member_id" validate:"omitempty,gt=0"`
	ReservationDate Field[Date]              `json:"reservation_date"`
	Status          Field[ReservationStatus] `json:"status" validate:"omitempty,oneof=Pending Fulfilled Cancelled"`
}

func (p ReservationPatch) Apply(r *Reservation) bool {
	changed := apply(&r.BookID, p.BookID)
	changed = apply(&r.MemberID, p.MemberID) || changed
	changed = apply(&r.ReservationDate, p.ReservationDate) || changed
	changed = apply(&r.Status, p.Status) || changed
	return changed
}
