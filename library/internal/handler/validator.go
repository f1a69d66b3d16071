package handler

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/pkg/validate"
)

func NewValidator() *validate.CustomValidator {
	return validate.NewCustomValidator(
		withModelTypes,
		withNonNegativeDecimal,
		withLoanPeriod,
	)
}

// withModelTypes lets tags apply to the wrapped value of dates, decimals and
// patch fields. An absent patch field validates as empty; a present one is
// handed over as a pointer so omitempty does not skip an explicit zero.
func withModelTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		return f.Interface().(model.Date).Time
	}, model.Date{})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		return f.Interface().(decimal.Decimal).String()
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(fieldValue[string], model.Field[string]{})
	v.RegisterCustomTypeFunc(fieldValue[int], model.Field[int]{})
	v.RegisterCustomTypeFunc(fieldValue[int64], model.Field[int64]{})
	v.RegisterCustomTypeFunc(fieldValue[model.MembershipStatus], model.Field[model.MembershipStatus]{})
	v.RegisterCustomTypeFunc(fieldValue[model.BorrowingStatus], model.Field[model.BorrowingStatus]{})
	v.RegisterCustomTypeFunc(fieldValue[model.ReservationStatus], model.Field[model.ReservationStatus]{})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		field := f.Interface().(model.Field[decimal.Decimal])
		if !field.Set {
			return nil
		}
		str := field.Value.String()
		return &str
	}, model.Field[decimal.Decimal]{})
}

func fieldValue[T any](f reflect.Value) any {
	field := f.Interface().(model.Field[T])
	if !field.Set {
		return nil
	}
	val := field.Value
	return &val
}

func withNonNegativeDecimal(v *validator.Validate) {
	_ = v.RegisterValidation("nonneg_decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
}

func withLoanPeriod(v *validator.Validate) {
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(model.CreateBorrowingRecordRequest)
		if req.BorrowDate.IsZero() || req.DueDate.IsZero() {
			return
		}
		if req.DueDate.Before(req.BorrowDate.Time) {
			sl.ReportError(req.DueDate, "DueDate", "due_date", "gtefield", "BorrowDate")
		}
	}, model.CreateBorrowingRecordRequest{})
}
