package client

import (
	"context"
	"fmt"
	"net/http"
)

func detailPath(id int64) string {
	return fmt.Sprintf("/api/items/%d/details", id)
}

func (c *Client) ListItemDetails(ctx context.Context, _ ListItemDetailsOptions) ([]ItemDetail, error) {
	var details []ItemDetail
	if err := c.do(ctx, http.MethodGet, "/api/items/details", nil, nil, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// GetItemDetail returns the record with its related collections.
func (c *Client) GetItemDetail(ctx context.Context, opt GetItemDetailOptions) (ItemDetailWithRelated, error) {
	var d ItemDetailWithRelated
	if err := c.do(ctx, http.MethodGet, detailPath(opt.ID), cacheHeader(opt.NoCache), nil, &d); err != nil {
		return ItemDetailWithRelated{}, err
	}
	return d, nil
}

func (c *Client) CreateItemDetail(ctx context.Context, opt CreateItemDetailOptions) (ItemDetail, error) {
	var d ItemDetail
	if err := c.do(ctx, http.MethodPost, "/api/items/details", nil, opt.Fields, &d); err != nil {
		return ItemDetail{}, err
	}
	return d, nil
}

// UpdateItemDetail sends only the non-nil fields; the update is all-or-nothing.
func (c *Client) UpdateItemDetail(ctx context.Context, opt UpdateItemDetailOptions) (ItemDetail, error) {
	var d ItemDetail
	if err := c.do(ctx, http.MethodPut, detailPath(opt.ID), nil, opt.Fields, &d); err != nil {
		return ItemDetail{}, err
	}
	return d, nil
}

func (c *Client) DeleteItemDetail(ctx context.Context, opt DeleteItemDetailOptions) (Deleted, error) {
	var d Deleted
	if err := c.do(ctx, http.MethodDelete, detailPath(opt.ID), nil, nil, &d); err != nil {
		return Deleted{}, err
	}
	return d, nil
}
