package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/pkg/database"
)

// Store is the set of entity operations; it is bound either to the pool
// or to a single transaction.
type Store interface {
	CreateMember(ctx context.Context, m model.Member) (model.Member, error)
	GetMember(ctx context.Context, id int64) (model.Member, error)
	ListMembers(ctx context.Context, p model.ListParams) ([]model.Member, error)
	UpdateMember(ctx context.Context, id int64, patch model.MemberPatch) (model.Member, error)
	DeleteMember(ctx context.Context, id int64) (bool, error)

	CreateBook(ctx context.Context, b model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	LockBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, p model.ListBooksParams) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int64, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) (bool, error)

	CreateStaff(ctx context.Context, s model.Staff) (model.Staff, error)
	GetStaff(ctx context.Context, id int64) (model.Staff, error)
	ListStaff(ctx context.Context, p model.ListParams) ([]model.Staff, error)
	UpdateStaff(ctx context.Context, id int64, patch model.StaffPatch) (model.Staff, error)

	CreateBorrowingRecord(ctx context.Context, rec model.BorrowingRecord) (model.BorrowingRecord, error)
	GetBorrowingRecord(ctx context.Context, id int64) (model.BorrowingRecord, error)
	ListBorrowingRecords(ctx context.Context, p model.ListParams) ([]model.BorrowingRecord, error)
	UpdateBorrowingRecord(ctx context.Context, id int64, patch model.BorrowingRecordPatch) (model.BorrowingRecord, error)
	HasActiveLoan(ctx context.Context, bookID int64) (bool, error)

	CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, id int64) (model.Reservation, error)
	ListReservations(ctx context.Context, p model.ListParams) ([]model.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, patch model.ReservationPatch) (model.Reservation, error)
	HasPendingReservation(ctx context.Context, bookID, memberID int64) (bool, error)
}

type Repository interface {
	Store
	// WithTx runs fn in one transaction; any error from fn rolls it back.
	WithTx(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
}

type repository struct {
	*queries
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	driver := db.DriverName()
	return &repository{
		db: db,
		queries: &queries{
			ext:      db,
			qb:       database.StatementBuilder(driver),
			lockRows: database.SupportsRowLocks(driver),
			now:      func() time.Time { return time.Now().UTC() },
			log:      log.Named("repo"),
		},
	}, nil
}

func (r *repository) WithTx(ctx context.Context, fn func(tx Store) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	scoped := *r.queries
	scoped.ext = tx
	if err = fn(&scoped); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

func (r *repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

const (
	membersTableName      = `members`
	booksTableName        = `books`
	staffTableName        = `staff`
	borrowingTableName    = `borrowing_records`
	reservationsTableName = `reservations`
)

type queries struct {
	ext      sqlx.ExtContext
	qb       sq.StatementBuilderType
	lockRows bool
	now      func() time.Time
	log      *zap.Logger
}

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

func (q *queries) get(ctx context.Context, dest any, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return sqlx.GetContext(ctx, q.ext, dest, query, args...)
}

func (q *queries) list(ctx context.Context, dest any, b sq.SelectBuilder, p model.ListParams) error {
	query, args, err := b.Offset(p.Skip).Limit(p.Limit).ToSql()
	if err != nil {
		return err
	}
	q.log.Debug("list", zap.String("query", query), zap.Any("args", args))
	if err := sqlx.SelectContext(ctx, q.ext, dest, query, args...); err != nil {
		q.log.Error("list", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return errors.Wrap(err, "select")
	}
	return nil
}

func (q *queries) insert(ctx context.Context, dest any, b sq.InsertBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return sqlx.GetContext(ctx, q.ext, dest, query, args...)
}

func (q *queries) update(ctx context.Context, dest any, b sq.UpdateBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return sqlx.GetContext(ctx, q.ext, dest, query, args...)
}

// delete reports false when no row matched.
func (q *queries) delete(ctx context.Context, b sq.DeleteBuilder) (bool, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return false, err
	}
	res, err := q.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (q *queries) exists(ctx context.Context, b sq.SelectBuilder) (bool, error) {
	var count int
	if err := q.get(ctx, &count, b); err != nil {
		return false, errors.Wrap(err, "count")
	}
	return count > 0, nil
}

func (q *queries) forUpdate(b sq.SelectBuilder) sq.SelectBuilder {
	if q.lockRows {
		return b.Suffix("FOR UPDATE")
	}
	return b
}

// noRows maps sql.ErrNoRows to the entity's not found error.
func noRows(err error, notFound *errs.Error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}
