package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"
)

// CreateOrder submits a draft and returns the persisted order with its
// server-assigned id, pending status and creation timestamp.
func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodPost, "/orders", draft, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Orders returns the caller's order history, newest first. The server
// returns insertion order; sorting is the client's job.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	orders := make([]Order, 0)
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Order fetches one order merged with its delivery address.
func (c *Client) Order(ctx context.Context, id uint) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus sets the order's status to one of pending, preparing,
// delivered, canceled.
func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status string) (*Order, error) {
	var o Order
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id),
		map[string]string{"status": status}, &o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
