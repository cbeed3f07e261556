package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/application/common"
)

type pingCommand struct {
	Value string
}

type otherCommand struct{}

func TestMediator_DispatchesByRequestType(t *testing.T) {
	// Arrange
	m := common.NewMediator()
	handler := common.HandlerFunc(func(ctx context.Context, request common.Request) (common.Response, error) {
		return "pong:" + request.(*pingCommand).Value, nil
	})
	require.NoError(t, common.RegisterHandler[*pingCommand](m, handler))

	// Act
	resp, err := m.Send(context.Background(), &pingCommand{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:a", resp)
}

func TestMediator_RejectsDuplicatesAndUnknownTypes(t *testing.T) {
	m := common.NewMediator()
	handler := common.HandlerFunc(func(context.Context, common.Request) (common.Response, error) { return nil, nil })
	require.NoError(t, common.RegisterHandler[*pingCommand](m, handler))

	assert.Error(t, common.RegisterHandler[*pingCommand](m, handler))
	_, err := m.Send(context.Background(), &otherCommand{})
	assert.ErrorContains(t, err, "no handler registered")
	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := common.NewMediator()
	var trace []string
	record := func(name string) common.Middleware {
		return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
			trace = append(trace, name+">")
			resp, err := next(ctx, request)
			trace = append(trace, "<"+name)
			return resp, err
		}
	}
	m.Use(record("outer"))
	m.Use(record("inner"))
	boom := errors.New("boom")
	require.NoError(t, common.RegisterHandler[*pingCommand](m, common.HandlerFunc(
		func(context.Context, common.Request) (common.Response, error) {
			trace = append(trace, "handler")
			return nil, boom
		})))

	// Act
	_, err := m.Send(context.Background(), &pingCommand{})

	// Assert
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"outer>", "inner>", "handler", "<inner", "<outer"}, trace)
}

type captureLogger struct {
	messages []string
}

func (c *captureLogger) Log(level, message string, metadata map[string]interface{}) {
	c.messages = append(c.messages, level+" "+message)
}

func TestLoggerFromContext(t *testing.T) {
	assert.NotPanics(t, func() {
		common.LoggerFromContext(context.Background()).Log(common.LevelInfo, "dropped", nil)
	})

	logger := &captureLogger{}
	ctx := common.WithLogger(context.Background(), logger)
	common.LoggerFromContext(ctx).Log(common.LevelInfo, "kept", nil)

	assert.Equal(t, []string{"INFO kept"}, logger.messages)
}
