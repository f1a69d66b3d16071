package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Date is a calendar day rendered as YYYY-MM-DD.
type Date struct {
	time.Time `json:",inline"`
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return NewDate(time.Now().UTC())
}

func MustParseDate(s string) Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return NewDate(t)
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	*d = NewDate(date)
	return
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("model.Date: cannot scan %T", src)
	}
	return nil
}

func (d *Date) parse(s string) error {
	if len(s) < len(time.DateOnly) {
		return fmt.Errorf("model.Date: bad value %q", s)
	}
	t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)])
	if err != nil {
		return err
	}
	*d = NewDate(t)
	return nil
}

// Field is one member of a partial update: Set is true only when the
// request carried the key, even if its value was null.
type Field[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// UnmarshalJSON accepts null only for nilable types such as *Date.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(b, []byte("null")) {
		switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		default:
			return fmt.Errorf("null is not allowed for %T", f.Value)
		}
		var zero T
		f.Value = zero
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// apply copies the patch value into dst when present.
func apply[T any](dst *T, f Field[T]) bool {
	if !f.Set {
		return false
	}
	*dst = f.Value
	return true
}

type Audit struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const DefaultLimit = 100

type ListParams struct {
	Skip  uint64 `query:"skip"`
	Limit uint64 `query:"limit" validate:"gte=1,lte=100"`
}

func NewListParams() ListParams {
	return ListParams{Limit: DefaultLimit}
}

type ListBooksParams struct {
	ListParams
	Search string `query:"search"`
}

type ErrorResponse struct {
	Kind    string `json:"kind,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
