package model

type Staff struct {
	ID       int64  `json:"staff_id" db:"staff_id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Phone    string `json:"phone" db:"phone"`
	Role     string `json:"role" db:"role"`
	HireDate Date   `json:"hire_date" db:"hire_date"`
	Audit
}

type CreateStaffRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Role     string `json:"role" validate:"required,max=50"`
	HireDate Date   `json:"hire_date" validate:"required"`
}

type StaffPatch struct {
	Name     Field[string] `json:"name" validate:"omitempty,max=100"`
	Email    Field[string] `json:"email" validate:"omitempty,email,max=100"`
	Phone    Field[string] `json:"phone" validate:"omitempty,max=20"`
	Role     Field[string] `json:"role" validate:"omitempty,max=50"`
	HireDate Field[Date]   `json:"hire_date"`
}

func (p StaffPatch) Apply(s *Staff) bool {
	changed := apply(&s.Name, p.Name)
	changed = apply(&s.Email, p.Email) || changed
	changed = apply(&s.Phone, p.Phone) || changed
	changed = apply(&s.Role, p.Role) || changed
	changed = apply(&s.HireDate, p.HireDate) || changed
	return changed
}
