package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionName creates a short, human-readable simulation session name.
// Format: {galaxy}-{8charHexUUID}
//
// Example:
//   - Input: galaxyID="Orion Arm"
//   - Output: "orion-arm-a3f8e2b1"
func GenerateSessionName(galaxyID string) string {
	base := slug(galaxyID)
	if base == "" {
		base = "session"
	}
	return base + "-" + generateShortUUID()
}

// slug lowercases s and collapses every run of non-alphanumerics into one hyphen
func slug(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
