package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-records/library/internal/events"
	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/library/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	pub  events.Publisher
}

func NewService(repo repository.Repository, pub events.Publisher, log *zap.Logger) *Service {
	if pub == nil {
		pub = events.NewNopPublisher()
	}
	return &Service{
		log:  log.Named("service"),
		repo: repo,
		pub:  pub,
	}
}

// publish runs after commit; a failure never fails the request.
func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.pub.Publish(ctx, e); err != nil {
		s.log.Warn("publish event", zap.String("type", string(e.Type)),
			zap.Int64("entity_id", e.EntityID), zap.Error(err))
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *Service) CreateMember(ctx context.Context, req model.CreateMemberRequest) (member model.Member, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		member, err = tx.CreateMember(ctx, model.Member{
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			Address:          req.Address,
			MembershipDate:   model.Today(),
			MembershipStatus: model.MembershipActive,
		})
		return err
	})
	return member, err
}

func (s *Service) GetMember(ctx context.Context, id int64) (model.Member, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context, p model.ListParams) ([]model.Member, error) {
	return s.repo.ListMembers(ctx, p)
}

func (s *Service) UpdateMember(ctx context.Context, id int64, patch model.MemberPatch) (member model.Member, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		member, err = tx.UpdateMember(ctx, id, patch)
		return err
	})
	return member, err
}

func (s *Service) DeleteMember(ctx context.Context, id int64) (deleted bool, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		deleted, err = tx.DeleteMember(ctx, id)
		return err
	})
	return deleted, err
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (book model.Book, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		book, err = tx.CreateBook(ctx, req.NewBook())
		return err
	})
	return book, err
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, p model.ListBooksParams) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, p)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, patch model.BookPatch) (book model.Book, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		book, err = tx.UpdateBook(ctx, id, patch)
		return err
	})
	return book, err
}

func (s *Service) DeleteBook(ctx context.Context, id int64) (deleted bool, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		deleted, err = tx.DeleteBook(ctx, id)
		return err
	})
	return deleted, err
}

func (s *Service) CreateStaff(ctx context.Context, req model.CreateStaffRequest) (staff model.Staff, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		staff, err = tx.CreateStaff(ctx, model.Staff{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Role:     req.Role,
			HireDate: req.HireDate,
		})
		return err
	})
	return staff, err
}

func (s *Service) GetStaff(ctx context.Context, id int64) (model.Staff, error) {
	return s.repo.GetStaff(ctx, id)
}

func (s *Service) ListStaff(ctx context.Context, p model.ListParams) ([]model.Staff, error) {
	return s.repo.ListStaff(ctx, p)
}

func (s *Service) UpdateStaff(ctx context.Context, id int64, patch model.StaffPatch) (staff model.Staff, err error) {
	err = s.repo.WithTx(ctx, func(tx repository.Store) error {
		staff, err = tx.UpdateStaff(ctx, id, patch)
		return err
	})
	return staff, err
}
