package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("chain", logger.Field("age"), logger.Rule("size"))
	require.Equal(t, "chain", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "field", g[0].Key)
	assert.Equal(t, "rule", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, slog.String("field", "age"), logger.Field("age"))
	assert.Equal(t, slog.Int("fields", 3), logger.Fields(3))
	assert.Equal(t, slog.String("rule", "hex"), logger.Rule("hex"))
	assert.Equal(t, slog.String("schema", "signup"), logger.Schema("signup"))
	assert.Equal(t, slog.String("request_id", "abc"), logger.RequestID("abc"))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
}
