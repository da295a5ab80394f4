package http

import (
	"github.com/gin-gonic/gin"

	"item-details-service/internal/itemdetail"
	"item-details-service/pkg/response"
)

// List godoc
// @Summary     List item details
// @Description Returns every item detail record, newest first.
// @Tags        ItemDetails
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {array}  detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/details [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, itemdetail.ListInput{Scope: h.scopeOf(c)})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDetailListResp(output.ItemDetails))
}

// Detail godoc
// @Summary     Get an item detail
// @Description Returns one record with its related data (attachments, comments, dependencies, history, child records).
// @Tags        ItemDetails
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id            path   int    true  "Item detail ID"
// @Param       Cache-Control header string false "no-cache bypasses the cache"
// @Success     200 {object} detailWithRelatedResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/details [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDetailWithRelatedResp(output))
}

// Create godoc
// @Summary     Create an item detail
// @Description Creates a record. Requires the editor or admin role.
// @Tags        ItemDetails
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body     fieldsDoc true "Item detail fields"
// @Success     201  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/items/details [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newDetailResp(output.ItemDetail))
}

// Update godoc
// @Summary     Update an item detail
// @Description Merges the supplied fields into the record. Nothing is written if any field is invalid.
// @Tags        ItemDetails
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id   path     int       true "Item detail ID"
// @Param       body body     fieldsDoc true "Fields to update"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/details [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDetailResp(output.ItemDetail))
}

// Delete godoc
// @Summary     Delete an item detail
// @Description Permanently removes a record. Requires the editor or admin role.
// @Tags        ItemDetails
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id  path     int true "Item detail ID"
// @Success     200 {object} deleteResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/details [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDeleteResp(req.id))
}
