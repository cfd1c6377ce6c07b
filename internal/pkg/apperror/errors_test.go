package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "user", err: ErrUserNotFound, want: KindNotFound},
		{name: "notebook", err: ErrNotebookNotFound, want: KindNotFoundOrUnauthorized},
		{name: "wrapped page", err: fmt.Errorf("get page: %w", ErrPageNotFound), want: KindNotFoundOrUnauthorized},
		{name: "malformed", err: Malformed("title is required"), want: KindMalformed},
		{name: "plain", err: errors.New("connection reset"), want: KindInternal},
		{name: "nil", err: nil, want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestSentinelsMatchWithErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("rename: %w", ErrNotebookNotFound)

	assert.ErrorIs(t, wrapped, ErrNotebookNotFound)
	assert.NotErrorIs(t, wrapped, ErrPageNotFound)
	assert.Equal(t, "Notebook not found or user is not authorized", ErrNotebookNotFound.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "malformed_request", KindMalformed.String())
	assert.Equal(t, "internal", Kind(99).String())
}
