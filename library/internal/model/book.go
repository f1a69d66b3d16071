package model

type Book struct {
	ID              int64  `json:"book_id" db:"book_id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	ISBN            string `json:"isbn" db:"isbn"`
	PublicationYear int    `json:"publication_year" db:"publication_year"`
	Publisher       string `json:"publisher" db:"publisher"`
	Category        string `json:"category" db:"category"`
	TotalCopies     int    `json:"total_copies" db:"total_copies"`
	AvailableCopies int    `json:"available_copies" db:"available_copies"`
	Location        string `json:"location" db:"location"`
	Audit
}

type CreateBookRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Author          string `json:"author" validate:"required,max=100"`
	ISBN            string `json:"isbn" validate:"required,max=13"`
	PublicationYear int    `json:"publication_year" validate:"required"`
	Publisher       string `json:"publisher" validate:"max=100"`
	Category        string `json:"category" validate:"max=50"`
	TotalCopies     *int   `json:"total_copies" validate:"omitempty,gte=1"`
	AvailableCopies *int   `json:"available_copies" validate:"omitempty,gte=0"`
	Location        string `json:"location" validate:"max=50"`
}

// NewBook fills the copy counters with their defaults when omitted.
func (r CreateBookRequest) NewBook() Book {
	b := Book{
		Title:           r.Title,
		Author:          r.Author,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
		Publisher:       r.Publisher,
		Category:        r.Category,
		TotalCopies:     1,
		AvailableCopies: 1,
		Location:        r.Location,
	}
	if r.TotalCopies != nil {
		b.TotalCopies = *r.TotalCopies
	}
	if r.AvailableCopies != nil {
		b.AvailableCopies = *r.AvailableCopies
	}
	return b
}

type BookPatch struct {
	Title           Field[string] `json:"title" validate:"omitempty,max=200"`
	Author          Field[string] `json:"author" validate:"omitempty,max=100"`
	ISBN            Field[string] `json:"isbn" validate:"omitempty,max=13"`
	PublicationYear Field[int]    `json:"publication_year"`
	Publisher       Field[string] `json:"publisher" validate:"omitempty,max=100"`
	Category        Field[string] `json:"category" validate:"omitempty,max=50"`
	TotalCopies     Field[int]    `json:"total_copies" validate:"omitempty,gte=1"`
	AvailableCopies Field[int]    `json:"available_copies" validate:"omitempty,gte=0"`
	Location        Field[string] `json:"location" validate:"omitempty,max=50"`
}

func (p BookPatch) Apply(b *Book) bool {
	changed := apply(&b.Title, p.Title)
	changed = apply(&b.Author, p.Author) || changed
	changed = apply(&b.ISBN, p.ISBN) || changed
	changed = apply(&b.PublicationYear, p.PublicationYear) || changed
	changed = apply(&b.Publisher, p.Publisher) || changed
	changed = apply(&b.Category, p.Category) || changed
	changed = apply(&b.TotalCopies, p.TotalCopies) || changed
	changed = apply(&b.AvailableCopies, p.AvailableCopies) || changed
	changed = apply(&b.Location, p.Location) || changed
	return changed
}
