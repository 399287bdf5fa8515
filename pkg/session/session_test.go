package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fakeapi/pkg/records"
)

func TestStore_LoginLogout(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Current())

	s.Login(Session{Token: "tok", User: records.PublicUser{ID: 1, Username: "bob"}})
	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "tok", cur.Token)
	assert.Equal(t, "bob", cur.User.Username)

	s.Logout()
	assert.Nil(t, s.Current())
}

func TestStore_CurrentIsCopy(t *testing.T) {
	s := NewStore()
	s.Login(Session{Token: "tok"})

	s.Current().Token = "changed"
	assert.Equal(t, "tok", s.Current().Token)
}

func TestStore_OnLogout(t *testing.T) {
	s := NewStore()
	var ended []string
	s.OnLogout(func(sess Session) { ended = append(ended, sess.User.Username) })

	s.Logout()
	assert.Empty(t, ended, "no hook without a session")

	s.Login(Session{Token: "tok", User: records.PublicUser{Username: "bob"}})
	s.Logout()
	s.Logout()
	assert.Equal(t, []string{"bob"}, ended)
}

func TestStore_ImplementsProvider(t *testing.T) {
	var _ Provider = NewStore()
}
