package rules

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
)

type fakeReader struct {
	books   map[int64]bool
	members map[int64]bool
	loans   map[int64]bool
	pending map[[2]int64]bool
	err     error
}

func (f fakeReader) LockBook(_ context.Context, id int64) (model.Book, error) {
	if !f.books[id] {
		return model.Book{}, errs.ErrBookNotFound
	}
	return model.Book{ID: id}, nil
}

func (f fakeReader) GetMember(_ context.Context, id int64) (model.Member, error) {
	if !f.members[id] {
		return model.Member{}, errs.ErrMemberNotFound
	}
	return model.Member{ID: id}, nil
}

func (f fakeReader) HasActiveLoan(_ context.Context, bookID int64) (bool, error) {
	return f.loans[bookID], f.err
}

func (f fakeReader) HasPendingReservation(_ context.Context, bookID, memberID int64) (bool, error) {
	return f.pending[[2]int64{bookID, memberID}], f.err
}

func TestCheckBorrow(t *testing.T) {
	t.Parallel()
	storeErr := errors.New("store down")
	tests := []struct {
		name     string
		reader   fakeReader
		bookID   int64
		memberID int64
		wantErr  error
	}{
		{
			name:   "ok",
			reader: fakeReader{books: map[int64]bool{1: true}, members: map[int64]bool{7: true}},
			bookID: 1, memberID: 7,
		},
		{
			name:   "book not found wins over member",
			reader: fakeReader{},
			bookID: 1, memberID: 7,
			wantErr: errs.ErrBookNotFound,
		},
		{
			name:   "member not found",
			reader: fakeReader{books: map[int64]bool{1: true}},
			bookID: 1, memberID: 7,
			wantErr: errs.ErrMemberNotFound,
		},
		{
			name: "already borrowed",
			reader: fakeReader{
				books: map[int64]bool{1: true}, members: map[int64]bool{7: true},
				loans: map[int64]bool{1: true},
			},
			bookID: 1, memberID: 7,
			wantErr: errs.ErrAlreadyBorrowed,
		},
		{
			name: "member not found wins over active loan",
			reader: fakeReader{
				books: map[int64]bool{1: true}, loans: map[int64]bool{1: true},
			},
			bookID: 1, memberID: 7,
			wantErr: errs.ErrMemberNotFound,
		},
		{
			name: "store failure",
			reader: fakeReader{
				books: map[int64]bool{1: true}, members: map[int64]bool{7: true}, err: storeErr,
			},
			bookID: 1, memberID: 7,
			wantErr: storeErr,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckBorrow(context.Background(), tt.reader, tt.bookID, tt.memberID)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckReserve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		reader   fakeReader
		bookID   int64
		memberID int64
		wantErr  error
	}{
		{
			name:   "ok",
			reader: fakeReader{books: map[int64]bool{1: true}, members: map[int64]bool{7: true}},
			bookID: 1, memberID: 7,
		},
		{
			name:   "book not found",
			reader: fakeReader{members: map[int64]bool{7: true}},
			bookID: 1, memberID: 7,
			wantErr: errs.ErrBookNotFound,
		},
		{
			name:   "member not found",
			reader: fakeReader{books: map[int64]bool{1: true}},
			bookID: 1, memberID: 7,
			wantErr: errs.ErrMemberNotFound,
		},
		{
			name: "duplicate",
			reader: fakeReader{
				books: map[int64]bool{1: true}, members: map[int64]bool{7: true},
				pending: map[[2]int64]bool{{1, 7}: true},
			},
			bookID: 1, memberID: 7,
			wantErr: errs.ErrDuplicateReservation,
		},
		{
			name: "pending for another member",
			reader: fakeReader{
				books: map[int64]bool{1: true}, members: map[int64]bool{7: true, 8: true},
				pending: map[[2]int64]bool{{1, 8}: true},
			},
			bookID: 1, memberID: 7,
		},
		{
			name: "borrowed book can still be reserved",
			reader: fakeReader{
				books: map[int64]bool{1: true}, members: map[int64]bool{7: true},
				loans: map[int64]bool{1: true},
			},
			bookID: 1, memberID: 7,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckReserve(context.Background(), tt.reader, tt.bookID, tt.memberID)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
