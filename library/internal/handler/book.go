package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
)

// CreateBook godoc
//
// @Summary	Create books
// @Tags		books
// @Accept		json
// @Produce	json
// @Param		request	body		model.CreateBookRequest	true	"fields to set"
// @Success	201	{object} model.Book
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := bindBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, book)
}

// GetBook godoc
//
// @Summary	Get books
// @Tags		books
// @Produce	json
// @Param		id	path	int	true	"id"
// @Success	200	{object} model.Book
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

// ListBooks accepts an optional search term matched against title and author.
//
// @Summary	List books
// @Tags		books
// @Produce	json
// @Param		skip	query	int	false	"skip"
// @Param		limit	query	int	false	"limit"
// @Param		search	query	string	false	"title or author substring"
// @Success	200	{array} model.Book
// @Failure	400	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	p := model.ListBooksParams{ListParams: model.NewListParams()}
	if err := bindList(c, &p); err != nil {
		return h.fail(c, err)
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), p)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

// UpdateBook godoc
//
// @Summary	Update books with the supplied fields
// @Tags		books
// @Accept		json
// @Produce	json
// @Param		id	path	int	true	"id"
// @Param		request	body		model.BookPatch	true	"fields to set"
// @Success	200	{object} model.Book
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/books/{id} [put]
// @Router		/api/v1/books/{id} [patch]
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch model.BookPatch
	if err = bindBody(c, &patch); err != nil {
		return h.fail(c, err)
	}
	book, err := h.librarySvc.UpdateBook(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook godoc
//
// @Summary	Delete books
// @Tags		books
// @Produce	json
// @Param		id	path	int	true	"id"
// @Success	200	{object} model.MessageResponse
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	ok, err := h.librarySvc.DeleteBook(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return h.fail(c, errs.ErrBookNotFound)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Book deleted successfully"})
}
