package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-records/library/internal/errs"
	"github.com/Astemirdum/library-records/library/internal/model"
)

// CreateMember godoc
//
// @Summary	Create members
// @Tags		members
// @Accept		json
// @Produce	json
// @Param		request	body		model.CreateMemberRequest	true	"fields to set"
// @Success	201	{object} model.Member
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/members [post]
func (h *Handler) CreateMember(c echo.Context) error {
	var req model.CreateMemberRequest
	if err := bindBody(c, &req); err != nil {
		return h.fail(c, err)
	}
	member, err := h.librarySvc.CreateMember(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, member)
}

// GetMember godoc
//
// @Summary	Get members
// @Tags		members
// @Produce	json
// @Param		id	path	int	true	"id"
// @Success	200	{object} model.Member
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/members/{id} [get]
func (h *Handler) GetMember(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	member, err := h.librarySvc.GetMember(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

// ListMembers godoc
//
// @Summary	List members
// @Tags		members
// @Produce	json
// @Param		skip	query	int	false	"skip"
// @Param		limit	query	int	false	"limit"
// @Success	200	{array} model.Member
// @Failure	400	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/members [get]
func (h *Handler) ListMembers(c echo.Context) error {
	p := model.NewListParams()
	if err := bindList(c, &p); err != nil {
		return h.fail(c, err)
	}
	members, err := h.librarySvc.ListMembers(c.Request().Context(), p)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, members)
}

// UpdateMember godoc
//
// @Summary	Update members with the supplied fields
// @Tags		members
// @Accept		json
// @Produce	json
// @Param		id	path	int	true	"id"
// @Param		request	body		model.MemberPatch	true	"fields to set"
// @Success	200	{object} model.Member
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/members/{id} [put]
// @Router		/api/v1/members/{id} [patch]
func (h *Handler) UpdateMember(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var patch model.MemberPatch
	if err = bindBody(c, &patch); err != nil {
		return h.fail(c, err)
	}
	member, err := h.librarySvc.UpdateMember(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

// DeleteMember godoc
//
// @Summary	Delete members
// @Tags		members
// @Produce	json
// @Param		id	path	int	true	"id"
// @Success	200	{object} model.MessageResponse
// @Failure	400	{object} model.ErrorResponse
// @Failure	404	{object} model.ErrorResponse
// @Failure	409	{object} model.ErrorResponse
// @Failure	500	{object} model.ErrorResponse
// @Router		/api/v1/members/{id} [delete]
func (h *Handler) DeleteMember(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}
	ok, err := h.librarySvc.DeleteMember(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return h.fail(c, errs.ErrMemberNotFound)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Member deleted successfully"})
}
