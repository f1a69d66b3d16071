package model

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "Active"
	MembershipInactive  MembershipStatus = "Inactive"
	MembershipSuspended MembershipStatus = "Suspended"
)

type Member struct {
	ID               int64            `json:"member_id" db:"member_id"`
	Name             string           `json:"name" db:"name"`
	Email            string           `json:"email" db:"email"`
	Phone            string           `json:"phone" db:"phone"`
	Address          string           `json:"address" db:"address"`
	MembershipDate   Date             `json:"membership_date" db:"membership_date"`
	MembershipStatus MembershipStatus `json:"membership_status" db:"membership_status"`
	Audit
}

type CreateMemberRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Address string `json:"address" validate:"required"`
}

// MemberPatch carries the fields of an update; membership_date is immutable.
type MemberPatch struct {
	Name             Field[string]           `json:"name" validate:"omitempty,max=100"`
	Email            Field[string]           `json:"email" validate:"omitempty,email,max=100"`
	Phone            Field[string]           `json:"phone" validate:"omitempty,max=20"`
	Address          Field[string]           `json:"address"`
	MembershipStatus Field[MembershipStatus] `json:"membership_status" validate:"omitempty,oneof=Active Inactive Suspended"`
}

// Apply merges the supplied fields into m and reports whether anything changed.
func (p MemberPatch) Apply(m *Member) bool {
	changed := apply(&m.Name, p.Name)
	changed = apply(&m.Email, p.Email) || changed
	changed = apply(&m.Phone, p.Phone) || changed
	changed = apply(&m.Address, p.Address) || changed
	changed = apply(&m.MembershipStatus, p.MembershipStatus) || changed
	return changed
}
