package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListItems(ctx context.Context, opt ListItemsOptions) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateItem(ctx context.Context, opt CreateItemOptions) (Item, error) {
	var it Item
	body := map[string]string{"name": opt.Name}
	if err := c.do(ctx, http.MethodPost, "/api/items", nil, body, &it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (c *Client) DeleteItem(ctx context.Context, opt DeleteItemOptions) (Deleted, error) {
	var d Deleted
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", opt.ID), nil, nil, &d); err != nil {
		return Deleted{}, err
	}
	return d, nil
}
