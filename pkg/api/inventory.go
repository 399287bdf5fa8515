package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/getmockd/fakeapi/pkg/api/types"
	"github.com/getmockd/fakeapi/pkg/client"
	"github.com/getmockd/fakeapi/pkg/records"
)

// Inventory calls the /inventory endpoints.
//
// List, Get, Create, Update and Delete are answered by the simulated
// backend. The borrow and report calls are not simulated and reach the
// real server.
type Inventory struct {
	c *client.Client
}

// NewInventory returns an Inventory service.
func NewInventory(c *client.Client) *Inventory {
	return &Inventory{c: c}
}

func (s *Inventory) url(parts ...string) string {
	path := "/inventory"
	for _, p := range parts {
		path += "/" + p
	}
	return s.c.URL(path)
}

// List returns every item.
func (s *Inventory) List(ctx context.Context) ([]records.Item, error) {
	var items []records.Item
	if err := s.c.Get(ctx, s.url(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns the item with id, or nil when there is none.
func (s *Inventory) Get(ctx context.Context, id int) (*records.Item, error) {
	var it *records.Item
	if err := s.c.Get(ctx, s.url(strconv.Itoa(id)), &it); err != nil {
		return nil, err
	}
	return it, nil
}

// Create adds an item with the given fields.
func (s *Inventory) Create(ctx context.Context, fields map[string]any) error {
	return s.c.Post(ctx, s.url(), fields, nil)
}

// Update merges fields onto the item with id.
func (s *Inventory) Update(ctx context.Context, id int, fields map[string]any) error {
	return s.c.Put(ctx, s.url(strconv.Itoa(id)), fields, nil)
}

// Delete removes the item with id.
func (s *Inventory) Delete(ctx context.Context, id int) error {
	return s.c.Delete(ctx, s.url(strconv.Itoa(id)), nil)
}

// BorrowRecords lists the borrows of an item.
func (s *Inventory) BorrowRecords(ctx context.Context, id int) ([]types.BorrowRecord, error) {
	var recs []types.BorrowRecord
	if err := s.c.Get(ctx, s.url(strconv.Itoa(id), "borrow"), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Borrow records a new borrow of an item.
func (s *Inventory) Borrow(ctx context.Context, id int, req types.BorrowRequest) error {
	return s.c.Post(ctx, s.url(strconv.Itoa(id), "borrow"), req, nil)
}

// Return marks a borrow as returned.
func (s *Inventory) Return(ctx context.Context, id, borrowID int) error {
	return s.c.Put(ctx, s.url(strconv.Itoa(id), "borrow", strconv.Itoa(borrowID), "return"), nil, nil)
}

// Report generates a report of the given type for a date range.
func (s *Inventory) Report(ctx context.Context, reportType, startDate, endDate string) (*types.Report, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var report types.Report
	u := s.url("reports", url.PathEscape(reportType)) + "?" + q.Encode()
	if err := s.c.Get(ctx, u, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
