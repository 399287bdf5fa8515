package fakebackend

import (
	"context"

	"github.com/getmockd/fakeapi/pkg/api/types"
	"github.com/getmockd/fakeapi/pkg/records"
	"github.com/getmockd/fakeapi/pkg/response"
	"github.com/getmockd/fakeapi/pkg/routing"
)

func (b *Backend) authenticate(_ context.Context, req *routing.Request) (*response.Simulated, error) {
	var creds types.Credentials
	if err := req.DecodeJSON(&creds); err != nil {
		return nil, errInvalidBody()
	}

	u, err := b.records.Authenticate(creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}
	return response.OKWith(types.AuthResponse{PublicUser: u, Token: b.guard.Token()}), nil
}

func (b *Backend) register(ctx context.Context, req *routing.Request) (*response.Simulated, error) {
	var u records.User
	if err := req.DecodeJSON(&u); err != nil {
		return nil, errInvalidBody()
	}
	if _, err := b.records.Register(ctx, u); err != nil {
		return nil, err
	}
	return response.NoContent(), nil
}

func (b *Backend) listUsers(context.Context, *routing.Request) (*response.Simulated, error) {
	return response.OKWith(b.records.Users()), nil
}

// getUser answers 200 with no body for an unknown id.
func (b *Backend) getUser(_ context.Context, req *routing.Request) (*response.Simulated, error) {
	u, ok := b.records.User(req.ID)
	if !ok {
		return response.NoContent(), nil
	}
	return response.OKWith(u), nil
}

func (b *Backend) updateUser(ctx context.Context, req *routing.Request) (*response.Simulated, error) {
	var upd records.UserUpdate
	if err := req.DecodeJSON(&upd); err != nil {
		return nil, errInvalidBody()
	}
	if err := b.records.UpdateUser(ctx, req.ID, upd); err != nil {
		return nil, err
	}
	return response.NoContent(), nil
}

func (b *Backend) deleteUser(ctx context.Context, req *routing.Request) (*response.Simulated, error) {
	if err := b.records.DeleteUser(ctx, req.ID); err != nil {
		return nil, err
	}
	return response.NoContent(), nil
}
