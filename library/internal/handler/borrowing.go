package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-records/library/internal/model"
)

// CreateBorrowingRecord godoc
//
// @Summary	Create borrowing-records
// @Tags		borrowing-records
// @Accept		json
// @Produce	json
// @Param		request	body		model.CreateBorrowingRecordRequest	true	"fields to set"
// @Success	201	{object} model.BorrowingRecord
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/borrowing-records [post]
func (h *Handler) CreateBorrowingRecord(c echo.Context) error {
	var req model.CreateBorrowingRecordRequest
	if err := bindBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	rec, err := h.librarySvc.CreateBorrowingRecord(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// GetBorrowingRecord godoc
//
// @Summary	Get borrowing-records
// @Tags		borrowing-records
// @Produce	json
// @Param		id	path	int	true	"id"
// @Success	200	{object} model.BorrowingRecord
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/borrowing-records/{id} [get]
func (h *Handler) GetBorrowingRecord(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	rec, err := h.librarySvc.GetBorrowingRecord(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// ListBorrowingRecords godoc
//
// @Summary	List borrowing-records
// @Tags		borrowing-records
// @Produce	json
// @Param		skip	query	int	false	"skip"
// @Param		limit	query	int	false	"limit"
// @Success	200	{array} model.BorrowingRecord
// @Failure	400	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/borrowing-records [get]
func (h *Handler) ListBorrowingRecords(c echo.Context) error {
	p := model.NewListParams()
	if err := bindList(c, &p); err != nil {
		return h.fail(c, err)
	}
	records, err := h.librarySvc.ListBorrowingRecords(c.Request().Context(), p)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// UpdateBorrowingRecord godoc
//
// @Summary	Update borrowing-records with the supplied fields
// @Tags		borrowing-records
// @Accept		json
// @Produce	json
// @Param		id	path	int	true	"id"
// @Param		request	body		model.BorrowingRecordPatch	true	"fields to set"
// @Success	200	{object} model.BorrowingRecord
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/borrowing-records/{id} [put]
// @Router		/api/v1/borrowing-records/{id} [patch]
func (h *Handler) UpdateBorrowingRecord(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch model.BorrowingRecordPatch
	if err = bindBody(c, &patch); err != nil {
		return h.fail(c, err)
	}
	rec, err := h.librarySvc.UpdateBorrowingRecord(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}
