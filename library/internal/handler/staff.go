package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-records/library/internal/model"
)

// CreateStaff godoc
//
// @Summary	Create staff
// @Tags		staff
// @Accept		json
// @Produce	json
// @Param		request	body		model.CreateStaffRequest	true	"fields to set"
// @Success	201	{object} model.Staff
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/staff [post]
func (h *Handler) CreateStaff(c echo.Context) error {
	var req model.CreateStaffRequest
	if err := bindBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	staff, err := h.librarySvc.CreateStaff(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, staff)
}

// GetStaff godoc
//
// @Summary	Get staff
// @Tags		staff
// @Produce	json
// @Param		id	path	int	true	"id"
// @Success	200	{object} model.Staff
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/staff/{id} [get]
func (h *Handler) GetStaff(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	staff, err := h.librarySvc.GetStaff(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}

// ListStaff godoc
//
// @Summary	List staff
// @Tags		staff
// @Produce	json
// @Param		skip	query	int	false	"skip"
// @Param		limit	query	int	false	"limit"
// @Success	200	{array} model.Staff
// @Failure	400	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/staff [get]
func (h *Handler) ListStaff(c echo.Context) error {
	p := model.NewListParams()
	if err := bindList(c, &p); err != nil {
		return h.fail(c, err)
	}
	staff, err := h.librarySvc.ListStaff(c.Request().Context(), p)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}

// UpdateStaff godoc
//
// @Summary	Update staff with the supplied fields
// @Tags		staff
// @Accept		json
// @Produce	json
// @Param		id	path	int	true	"id"
// @Param		request	body		model.StaffPatch	true	"fields to set"
// @Success	200	{object} model.Staff
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/staff/{id} [put]
// @Router		/api/v1/staff/{id} [patch]
func (h *Handler) UpdateStaff(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch model.StaffPatch
	if err = bindBody(c, &patch); err != nil {
		return h.fail(c, err)
	}
	staff, err := h.librarySvc.UpdateStaff(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}
