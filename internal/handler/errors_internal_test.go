package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

func TestUnwrapMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"service wrapped", fmt.Errorf("service.AdventureService.Create: %w: destination is required", domain.ErrValidation), "destination is required"},
		{"bare sentinel", domain.ErrValidation, "validation error"},
		{"unrelated", errors.New("boom"), "boom"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, unwrapMessage(tc.err))
		})
	}
}
