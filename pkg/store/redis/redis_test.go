package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InvalidURL(t *testing.T) {
	_, err := New(context.Background(), "not-a-redis-url", "")
	assert.ErrorContains(t, err, "parse redis URL")
}
