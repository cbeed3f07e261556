package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/starfront-go/pkg/utils"
)

func TestGenerateSessionName(t *testing.T) {
	tests := []struct {
		galaxy string
		prefix string
	}{
		{"orion-arm", "orion-arm"},
		{"Orion Arm", "orion-arm"},
		{"  The  Rim!! ", "the-rim"},
		{"", "session"},
		{"***", "session"},
	}

	for _, tt := range tests {
		t.Run(tt.galaxy, func(t *testing.T) {
			name := utils.GenerateSessionName(tt.galaxy)

			assert.Regexp(t, regexp.MustCompile("^"+regexp.QuoteMeta(tt.prefix)+"-[0-9a-f]{8}$"), name)
		})
	}
}

func TestGenerateSessionName_Unique(t *testing.T) {
	assert.NotEqual(t, utils.GenerateSessionName("g"), utils.GenerateSessionName("g"))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 turns", utils.Plural(0, "turn"))
	assert.Equal(t, "1 turn", utils.Plural(1, "turn"))
	assert.Equal(t, "12 battles", utils.Plural(12, "battle"))
}
