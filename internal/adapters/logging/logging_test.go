package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/adapters/logging"
	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestSlogLogger_JSONAndLevels(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	l := logging.NewWithWriter(&buf, logging.Options{Level: "info", Format: "json"})

	// Act
	l.Log(common.LevelDebug, "hidden", nil)
	l.Log(common.LevelInfo, "turn processed", map[string]interface{}{"turn": 3, "battles": 1})
	l.Log(common.LevelWarn, "snapshot skipped", nil)

	// Assert
	records := decodeLines(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "turn processed", records[0]["msg"])
	assert.Equal(t, "INFO", records[0]["level"])
	assert.EqualValues(t, 3, records[0]["turn"])
	assert.Equal(t, "WARN", records[1]["level"])
}

func TestSlogLogger_TextFormat(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	l := logging.NewWithWriter(&buf, logging.Options{Level: "debug", Format: "text"})

	// Act
	l.With("session", "alpha").Log(common.LevelDebug, "queued", map[string]interface{}{"ship": 1})

	// Assert
	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=queued")
	assert.Contains(t, out, "session=alpha")
	assert.Contains(t, out, "ship=1")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel(common.LevelWarn))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("chatty"))
}

func TestNew_FileOutput(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "sim.log")

	// Act
	l, err := logging.New(logging.Options{Level: "info", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)
	l.Log(common.LevelInfo, "hello", nil)
	require.NoError(t, l.Close())

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNew_UnsupportedOutput(t *testing.T) {
	_, err := logging.New(logging.Options{Output: "syslog"})

	assert.Error(t, err)
}

func TestNotifierAndObserver(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	l := logging.NewWithWriter(&buf, logging.Options{Level: "debug", Format: "json"})
	n := logging.NewNotifier(l)
	o := logging.NewObserver(l)

	// Act
	n.Notify(world.Notification{Turn: 4, Ship: 2, Message: "Raider explodes", Sound: world.SoundExplosion})
	o.ActionCompleted(2, "mine", nil)
	o.ActionCompleted(2, "mine", errors.New("ore hold is full"))
	o.ShipDestroyed(2)

	// Assert
	records := decodeLines(t, &buf)
	require.Len(t, records, 3)
	assert.Equal(t, "Raider explodes", records[0]["msg"])
	assert.Equal(t, "explosion", records[0]["sound"])
	assert.Equal(t, "notifier", records[0]["component"])
	assert.Equal(t, "action rejected", records[1]["msg"])
	assert.Equal(t, "ore hold is full", records[1]["reason"])
	assert.Equal(t, "ship destroyed", records[2]["msg"])
}
