package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"item-details-service/internal/itemdetail"
	"item-details-service/internal/model"
	pkgErrors "item-details-service/pkg/errors"
	"item-details-service/pkg/request"
	"item-details-service/pkg/scope"
)

// processFields decodes a JSON object body through the field allow-list.
// Unknown keys and badly typed values are reported per field.
func (h *handler) processFields(c *gin.Context) (itemdetail.Fields, error) {
	body, err := request.DecodeObject(c)
	if err != nil {
		return itemdetail.Fields{}, errInvalidBody
	}

	v := pkgErrors.NewValidationError()
	seen := make(map[string]string, len(body))
	var f itemdetail.Fields
	for key, raw := range body {
		name := key
		if canonical, ok := fieldAliases[key]; ok {
			name = canonical
		}
		decode, ok := fieldDecoders[name]
		if !ok {
			v.Add(key, "is not a recognized field")
			continue
		}
		if other, dup := seen[name]; dup {
			v.Add(name, "is supplied more than once (as "+other+" and "+key+")")
			continue
		}
		seen[name] = key
		if msg := decode(&f, raw); msg != "" {
			v.Add(name, msg)
		}
	}

	if err := v.OrNil(); err != nil {
		return itemdetail.Fields{}, err
	}
	return f, nil
}

// processID parses the :id path parameter. Anything but a positive integer
// cannot name a record, so it is reported as not found.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, itemdetail.ErrNotFound
	}
	return id, nil
}

func (h *handler) scopeOf(c *gin.Context) model.Scope {
	sc, _ := scope.GetScopeFromContext(c.Request.Context())
	return sc
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	fields, err := h.processFields(c)
	if err != nil {
		return createReq{}, err
	}
	return createReq{scope: h.scopeOf(c), fields: fields}, nil
}

func (h *handler) processDetailReq(c *gin.Context) (detailReq, error) {
	id, err := h.processID(c)
	if err != nil {
		return detailReq{}, err
	}
	noCache := strings.Contains(strings.ToLower(c.GetHeader("Cache-Control")), "no-cache")
	if q, err := strconv.ParseBool(c.Query("no_cache")); err == nil && q {
		noCache = true
	}
	return detailReq{scope: h.scopeOf(c), id: id, noCache: noCache}, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	id, err := h.processID(c)
	if err != nil {
		return updateReq{}, err
	}
	fields, err := h.processFields(c)
	if err != nil {
		return updateReq{}, err
	}
	return updateReq{scope: h.scopeOf(c), id: id, fields: fields}, nil
}

func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	id, err := h.processID(c)
	if err != nil {
		return deleteReq{}, err
	}
	return deleteReq{scope: h.scopeOf(c), id: id}, nil
}
