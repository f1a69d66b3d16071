package handler

import (
	"context"

	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	Ping(ctx context.Context) error

	CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error)
	GetMember(ctx context.Context, id int64) (model.Member, error)
	ListMembers(ctx context.Context, p model.ListParams) ([]model.Member, error)
	UpdateMember(ctx context.Context, id int64, patch model.MemberPatch) (model.Member, error)
	DeleteMember(ctx context.Context, id int64) (bool, error)

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, p model.ListBooksParams) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int64, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) (bool, error)

	CreateStaff(ctx context.Context, req model.CreateStaffRequest) (model.Staff, error)
	GetStaff(ctx context.Context, id int64) (model.Staff, error)
	ListStaff(ctx context.Context, p model.ListParams) ([]model.Staff, error)
	UpdateStaff(ctx context.Context, id int64, patch model.StaffPatch) (model.Staff, error)

	CreateBorrowingRecord(ctx context.Context, req model.CreateBorrowingRecordRequest) (model.BorrowingRecord, error)
	GetBorrowingRecord(ctx context.Context, id int64) (model.BorrowingRecord, error)
	ListBorrowingRecords(ctx context.Context, p model.ListParams) ([]model.BorrowingRecord, error)
	UpdateBorrowingRecord(ctx context.Context, id int64, patch model.BorrowingRecordPatch) (model.BorrowingRecord, error)

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservation(ctx context.Context, id int64) (model.Reservation, error)
	ListReservations(ctx context.Context, p model.ListParams) ([]model.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, patch model.ReservationPatch) (model.Reservation, error)
}

var _ LibraryService = (*service.Service)(nil)
