package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Read-only catalog calls; none of these require a session.

func (c *Client) Restaurants(ctx context.Context) ([]Restaurant, error) {
	out := make([]Restaurant, 0)
	err := c.do(ctx, http.MethodGet, "/restaurants", nil, &out)
	return out, err
}

func (c *Client) Restaurant(ctx context.Context, id uint) (*Restaurant, error) {
	var r Restaurant
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/restaurants/%d", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) RestaurantsByCity(ctx context.Context, city string) ([]Restaurant, error) {
	out := make([]Restaurant, 0)
	err := c.do(ctx, http.MethodGet, "/restaurants/city/"+url.PathEscape(city), nil, &out)
	return out, err
}

func (c *Client) SearchRestaurants(ctx context.Context, query string) ([]Restaurant, error) {
	out := make([]Restaurant, 0)
	err := c.do(ctx, http.MethodGet, "/restaurants/search?query="+url.QueryEscape(query), nil, &out)
	return out, err
}

// Meals filters by restaurant and/or category id; zero values skip the
// filter.
func (c *Client) Meals(ctx context.Context, restaurantID uint, categoryID string) ([]Meal, error) {
	q := url.Values{}
	if restaurantID != 0 {
		q.Set("restaurantId", fmt.Sprint(restaurantID))
	}
	if categoryID != "" {
		q.Set("categoryIds_like", categoryID)
	}
	path := "/meals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	out := make([]Meal, 0)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) News(ctx context.Context) ([]NewsItem, error) {
	out := make([]NewsItem, 0)
	err := c.do(ctx, http.MethodGet, "/news", nil, &out)
	return out, err
}
