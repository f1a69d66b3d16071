package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-records/library/internal/model"
)

// CreateReservation godoc
//
// @Summary	Create reservations
// @Tags		reservations
// @Accept		json
// @Produce	json
// @Param		request	body		model.CreateReservationRequest	true	"fields to set"
// @Success	201	{object} model.Reservation
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := bindBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	rsv, err := h.librarySvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

// GetReservation godoc
//
// @Summary	Get reservations
// @Tags		reservations
// @Produce	json
// @Param		id	path	int	true	"id"
// @Success	200	{object} model.Reservation
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/reservations/{id} [get]
func (h *Handler) GetReservation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	rsv, err := h.librarySvc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, rsv)
}

// ListReservations godoc
//
// @Summary	List reservations
// @Tags		reservations
// @Produce	json
// @Param		skip	query	int	false	"skip"
// @Param		limit	query	int	false	"limit"
// @Success	200	{array} model.Reservation
// @Failure	400	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/reservations [get]
func (h *Handler) ListReservations(c echo.Context) error {
	p := model.NewListParams()
	if err := bindList(c, &p); err != nil {
		return h.fail(c, err)
	}
	reservations, err := h.librarySvc.ListReservations(c.Request().Context(), p)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// UpdateReservation godoc
//
// @Summary	Update reservations with the supplied fields
// @Tags		reservations
// @Accept		json
// @Produce	json
// @Param		id	path	int	true	"id"
// @Param		request	body		model.ReservationPatch	true	"fields to set"
// @Success	200	{object} model.Reservation
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/reservations/{id} [put]
// @Router		/api/v1/reservations/{id} [patch]
func (h *Handler) UpdateReservation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch model.ReservationPatch
	if err = bindBody(c, &patch); err != nil {
		return h.fail(c, err)
	}
	rsv, err := h.librarySvc.UpdateReservation(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, rsv)
}
