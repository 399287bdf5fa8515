package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fakeapi/pkg/records"
)

func TestAuthResponse_Flat(t *testing.T) {
	data, err := json.Marshal(AuthResponse{
		PublicUser: records.PublicUser{ID: 1, Username: "bob"},
		Token:      "tok",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"bob","token":"tok"}`, string(data))

	var got AuthResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"username":"amy","firstName":"Amy","token":"t"}`), &got))
	assert.Equal(t, 2, got.ID)
	assert.Equal(t, "Amy", got.FirstName)
	assert.Equal(t, "t", got.Token)
}
