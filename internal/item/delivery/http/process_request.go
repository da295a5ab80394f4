package http

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"item-details-service/internal/model"
	pkgErrors "item-details-service/pkg/errors"
	"item-details-service/pkg/request"
	"item-details-service/pkg/scope"
)

func (h *handler) scopeOf(c *gin.Context) model.Scope {
	sc, _ := scope.GetScopeFromContext(c.Request.Context())
	return sc
}

// processCreateReq decodes the create body. A name that is present but not
// a JSON string is a validation error on "name".
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	req := createReq{scope: h.scopeOf(c)}

	body, err := request.DecodeObject(c)
	if err != nil {
		return req, errInvalidBody
	}

	raw, ok := body["name"]
	if !ok {
		return req, nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil || string(raw) == "null" {
		return req, pkgErrors.FieldError("name", "must be a string")
	}
	req.Name = &name
	return req, nil
}

// processDeleteReq parses the :id path parameter.
func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return deleteReq{}, errInvalidID
	}
	return deleteReq{ID: id, scope: h.scopeOf(c)}, nil
}
