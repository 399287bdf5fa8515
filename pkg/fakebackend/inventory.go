package fakebackend

import (
	"context"

	"github.com/getmockd/fakeapi/pkg/response"
	"github.com/getmockd/fakeapi/pkg/routing"
)

func (b *Backend) listItems(context.Context, *routing.Request) (*response.Simulated, error) {
	return response.OKWith(b.records.Items()), nil
}

func (b *Backend) createItem(ctx context.Context, req *routing.Request) (*response.Simulated, error) {
	fields, err := req.Fields()
	if err != nil {
		return nil, errInvalidBody()
	}
	if _, err := b.records.CreateItem(ctx, fields); err != nil {
		return nil, err
	}
	return response.NoContent(), nil
}

func (b *Backend) getItem(_ context.Context, req *routing.Request) (*response.Simulated, error) {
	it, ok := b.records.Item(req.ID)
	if !ok {
		return response.NoContent(), nil
	}
	return response.OKWith(it), nil
}

func (b *Backend) updateItem(ctx context.Context, req *routing.Request) (*response.Simulated, error) {
	fields, err := req.Fields()
	if err != nil {
		return nil, errInvalidBody()
	}
	if err := b.records.UpdateItem(ctx, req.ID, fields); err != nil {
		return nil, err
	}
	return response.NoContent(), nil
}

func (b *Backend) deleteItem(ctx context.Context, req *routing.Request) (*response.Simulated, error) {
	if err := b.records.DeleteItem(ctx, req.ID); err != nil {
		return nil, err
	}
	return response.NoContent(), nil
}
