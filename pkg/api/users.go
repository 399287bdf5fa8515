package api

import (
	"context"
	"strconv"

	"github.com/getmockd/fakeapi/pkg/api/types"
	"github.com/getmockd/fakeapi/pkg/client"
	"github.com/getmockd/fakeapi/pkg/records"
	"github.com/getmockd/fakeapi/pkg/session"
)

// Users calls the /users endpoints.
type Users struct {
	c        *client.Client
	sessions *session.Store
}

// NewUsers returns a Users service. sessions receives the session on Login
// and may be nil when no login state is kept.
func NewUsers(c *client.Client, sessions *session.Store) *Users {
	return &Users{c: c, sessions: sessions}
}

func (s *Users) url(parts ...string) string {
	path := "/users"
	for _, p := range parts {
		path += "/" + p
	}
	return s.c.URL(path)
}

// Login authenticates and stores the resulting session.
func (s *Users) Login(ctx context.Context, username, password string) (session.Session, error) {
	var resp types.AuthResponse
	creds := types.Credentials{Username: username, Password: password}
	if err := s.c.Post(ctx, s.url("authenticate"), creds, &resp); err != nil {
		return session.Session{}, err
	}

	sess := session.Session{Token: resp.Token, User: resp.PublicUser}
	if s.sessions != nil {
		s.sessions.Login(sess)
	}
	return sess, nil
}

// Logout ends the current session.
func (s *Users) Logout() {
	if s.sessions != nil {
		s.sessions.Logout()
	}
}

// Register creates an account.
func (s *Users) Register(ctx context.Context, u records.User) error {
	return s.c.Post(ctx, s.url("register"), u, nil)
}

// List returns every user.
func (s *Users) List(ctx context.Context) ([]records.PublicUser, error) {
	var users []records.PublicUser
	if err := s.c.Get(ctx, s.url(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns the user with id, or nil when there is none.
func (s *Users) Get(ctx context.Context, id int) (*records.PublicUser, error) {
	var u *records.PublicUser
	if err := s.c.Get(ctx, s.url(strconv.Itoa(id)), &u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update changes the user with id. Updating the logged-in user also
// refreshes the stored session.
func (s *Users) Update(ctx context.Context, id int, upd records.UserUpdate) error {
	if err := s.c.Put(ctx, s.url(strconv.Itoa(id)), upd, nil); err != nil {
		return err
	}

	cur := s.current()
	if cur == nil || cur.User.ID != id {
		return nil
	}
	if upd.Username != nil {
		cur.User.Username = *upd.Username
	}
	if upd.FirstName != nil {
		cur.User.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		cur.User.LastName = *upd.LastName
	}
	s.sessions.Login(*cur)
	return nil
}

// Delete removes the user with id. Deleting the logged-in user logs out.
func (s *Users) Delete(ctx context.Context, id int) error {
	if err := s.c.Delete(ctx, s.url(strconv.Itoa(id)), nil); err != nil {
		return err
	}
	if cur := s.current(); cur != nil && cur.User.ID == id {
		s.sessions.Logout()
	}
	return nil
}

func (s *Users) current() *session.Session {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Current()
}
