package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListItems returns every item in server order.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	items := make([]Item, 0)
	if err := c.Get(ctx, "/getalltodos", &items); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// CreateItem creates a new item. The service may answer with the created item
// or with a bare acknowledgement; in the latter case the returned item is nil.
func (c *Client) CreateItem(ctx context.Context, title string) (*Item, error) {
	var raw json.RawMessage
	if err := c.Post(ctx, "/posttodo", CreateItemRequest{Title: title}, &raw); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	var item Item
	if len(raw) == 0 || json.Unmarshal(raw, &item) != nil || item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// SetCompleted sets the completion flag of an item.
func (c *Client) SetCompleted(ctx context.Context, id int64, completed bool) error {
	query := url.Values{}
	query.Set("completed", strconv.FormatBool(completed))

	if err := c.PatchWithQuery(ctx, itemPath(id), query); err != nil {
		return fmt.Errorf("failed to update item %d: %w", id, err)
	}
	return nil
}

// UpdateItem replaces the title of an item. The completion flag is sent along
// so the server does not reset it.
func (c *Client) UpdateItem(ctx context.Context, id int64, title string, completed bool) error {
	query := url.Values{}
	query.Set("title", title)
	query.Set("completed", strconv.FormatBool(completed))

	if err := c.PatchWithQuery(ctx, itemPath(id), query); err != nil {
		return fmt.Errorf("failed to update item %d: %w", id, err)
	}
	return nil
}

// DeleteItem deletes an item.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, itemPath(id)); err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}

func itemPath(id int64) string {
	return "/todos/" + strconv.FormatInt(id, 10)
}
