package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireOwner(t *testing.T) {
	cases := []struct {
		name      string
		owner     uint64
		requester uint64
		wantErr   error
	}{
		{"owner", 7, 7, nil},
		{"other user", 7, 8, ErrForbidden},
		{"anonymous", 7, 0, ErrForbidden},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.wantErr, RequireOwner(c.owner, c.requester))
		})
	}
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(ErrForbidden)
	assert.True(t, ok)
	assert.Equal(t, Forbidden, code)

	code, ok = CodeOf(invalidInput(context.Background(), assert.AnError))
	assert.True(t, ok)
	assert.Equal(t, BadRequest, code)

	code, ok = CodeOf(assert.AnError)
	assert.False(t, ok)
	assert.Equal(t, InternalServerError, code)
}
