package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
	"github.com/Astemirdum/library-records/pkg/database"
)

var bookColumns = []string{
	"book_id", "title", "author", "isbn", "publication_year", "publisher", "category",
	"total_copies", "available_copies", "location", "created_at", "updated_at",
}

func (q *queries) CreateBook(ctx context.Context, bk model.Book) (model.Book, error) {
	now := q.now()
	b := q.qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "publication_year", "publisher", "category",
			"total_copies", "available_copies", "location", "created_at", "updated_at").
		Values(bk.Title, bk.Author, bk.ISBN, bk.PublicationYear, bk.Publisher, bk.Category,
			bk.TotalCopies, bk.AvailableCopies, bk.Location, now, now).
		Suffix(returning(bookColumns))

	var created model.Book
	if err := q.insert(ctx, &created, b); err != nil {
		if database.IsUniqueViolation(err) {
			return model.Book{}, errs.ErrISBNTaken.Wrap(err)
		}
		q.log.Error("CreateBook", zap.String("isbn", bk.ISBN), zap.Error(err))
		return model.Book{}, errors.Wrap(err, "insert book")
	}
	return created, nil
}

func (q *queries) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return q.getBook(ctx, id, false)
}

// LockBook loads the book and, where the dialect allows it, holds a row lock
// until the surrounding transaction ends.
func (q *queries) LockBook(ctx context.Context, id int64) (model.Book, error) {
	return q.getBook(ctx, id, true)
}

func (q *queries) getBook(ctx context.Context, id int64, lock bool) (model.Book, error) {
	b := q.qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"book_id": id})
	if lock {
		b = q.forUpdate(b)
	}
	var bk model.Book
	if err := q.get(ctx, &bk, b); err != nil {
		return model.Book{}, noRows(err, errs.ErrBookNotFound)
	}
	return bk, nil
}

// ListBooks filters case-insensitively on title or author when a search term is given.
func (q *queries) ListBooks(ctx context.Context, p model.ListBooksParams) ([]model.Book, error) {
	b := q.qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("book_id")
	if search := strings.TrimSpace(p.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		b = b.Where(sq.Or{
			sq.Like{"lower(title)": pattern},
			sq.Like{"lower(author)": pattern},
		})
	}

	books := make([]model.Book, 0)
	if err := q.list(ctx, &books, b, p.ListParams); err != nil {
		return nil, err
	}
	return books, nil
}

func (q *queries) UpdateBook(ctx context.Context, id int64, patch model.BookPatch) (model.Book, error) {
	bk, err := q.getBook(ctx, id, true)
	if err != nil {
		return model.Book{}, err
	}
	patch.Apply(&bk)

	b := q.qb.Update(booksTableName).
		SetMap(map[string]any{
			"title":            bk.Title,
			"author":           bk.Author,
			"isbn":             bk.ISBN,
			"publication_year": bk.PublicationYear,
			"publisher":        bk.Publisher,
			"category":         bk.Category,
			"total_copies":     bk.TotalCopies,
			"available_copies": bk.AvailableCopies,
			"location":         bk.Location,
			"updated_at":       q.now(),
		}).
		Where(sq.Eq{"book_id": id}).
		Suffix(returning(bookColumns))

	var updated model.Book
	if err = q.update(ctx, &updated, b); err != nil {
		if database.IsUniqueViolation(err) {
			return model.Book{}, errs.ErrISBNTaken.Wrap(err)
		}
		return model.Book{}, errors.Wrap(noRows(err, errs.ErrBookNotFound), "update book")
	}
	return updated, nil
}

func (q *queries) DeleteBook(ctx context.Context, id int64) (bool, error) {
	ok, err := q.delete(ctx, q.qb.Delete(booksTableName).Where(sq.Eq{"book_id": id}))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, errs.ErrReferenced.Wrap(err)
		}
		return false, errors.Wrap(err, "delete book")
	}
	return ok, nil
}
