package shared_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

func TestIsRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"plain rejection", shared.NewRejection("already docked"), true},
		{"shortfall", shared.NewInsufficientError("fuel", 0, 1), true},
		{"wrapped shortfall", fmt.Errorf("burn: %w", shared.NewInsufficientError("fuel", 0, 1)), true},
		{"validation error", shared.NewValidationError("orbit", "out of range"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.IsRejection(tt.err))
		})
	}
}

func TestInsufficientError_StatesBothSides(t *testing.T) {
	err := shared.NewInsufficientError("energy", 0, 1)

	assert.Equal(t, "insufficient energy: have 0, need 1", err.Error())
	assert.Equal(t, err.Error(), err.Reason())
}
