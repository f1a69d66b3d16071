package errs_test

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-records/library/internal/errs"
)

func TestError_IsByReason(t *testing.T) {
	wrapped := errs.ErrAlreadyBorrowed.Wrap(errors.New("UNIQUE constraint failed"))
	chained := fmt.Errorf("create record: %w", wrapped)

	assert.ErrorIs(t, chained, errs.ErrAlreadyBorrowed)
	assert.NotErrorIs(t, chained, errs.ErrDuplicateReservation)
	assert.Equal(t, errs.KindConflict, errs.KindOf(chained))
	assert.Contains(t, chained.Error(), "Book is already borrowed")
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "not found", err: errs.ErrBookNotFound, want: errs.KindNotFound},
		{name: "conflict wrapped by pkg/errors", err: errors.Wrap(errs.ErrEmailTaken, "repo"), want: errs.KindConflict},
		{name: "validation", err: errs.Validation(errors.New("bad email")), want: errs.KindValidation},
		{name: "internal", err: errors.New("connection refused"), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}
