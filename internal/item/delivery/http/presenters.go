package http

import (
	"item-details-service/internal/item"
	"item-details-service/internal/model"
	"item-details-service/pkg/response"
)

// --- Request DTOs ---

// createReq is documentation for swag; the body is decoded field by field
// in processCreateReq so that a non-string name is reported on "name".
type createReq struct {
	Name  *string     `json:"name" example:"Buy milk"`
	scope model.Scope
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{Scope: r.scope, Name: r.Name}
}

type listReq struct{}

func (r listReq) toInput() item.ListItemsInput {
	return item.ListItemsInput{}
}

type deleteReq struct {
	ID    int64
	scope model.Scope
}

func (r deleteReq) toInput() item.DeleteItemInput {
	return item.DeleteItemInput{Scope: r.scope, ID: r.ID}
}

// --- Response DTOs ---

type itemResp struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:        it.ID,
		Name:      it.Name,
		CreatedAt: response.DateTime(it.CreatedAt),
	}
}

func (h *handler) newListResp(o item.ListItemsOutput) []itemResp {
	items := make([]itemResp, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, newItemResp(it))
	}
	return items
}

type deleteResp struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func newDeleteResp(id int64) deleteResp {
	return deleteResp{
		Message: "item deleted",
		ID:      id,
	}
}
