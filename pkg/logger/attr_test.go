package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("rule", slog.String("kind", "mask"), slog.Int("index", 2))
	require.Equal(t, "rule", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "kind", g[0].Key)
	assert.Equal(t, "index", g[1].Key)
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
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Form("signup"), "form", "signup"},
		{logger.Field("age"), "field", "age"},
		{logger.RuleKind("date"), "rule", "date"},
		{logger.RuleIndex(3), "rule_index", int64(3)},
		{logger.Reason("field disabled"), "reason", "field disabled"},
		{logger.RunID("abc"), "run_id", "abc"},
		{logger.Component("engine"), "component", "engine"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.want, tt.attr.Value.Any())
	}
}
