package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"Warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestFields(t *testing.T) {
	f := fields([]any{"module", "sync", "count", 3, "error", errors.New("boom"), "dangling"})
	require.Equal(t, "sync", f["module"])
	require.Equal(t, 3, f["count"])
	require.Equal(t, "boom", f["error"])
	require.Equal(t, "dangling", f["!BADKEY"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Init(logrus.WarnLevel)
	t.Cleanup(func() {
		SetOutput(&bytes.Buffer{})
		Init(logrus.InfoLevel)
	})

	Info("hidden", "module", "test")
	require.Empty(t, buf.String())

	Warn("shown", "module", "test", "result", "failed")
	out := buf.String()
	require.Contains(t, out, "level=warning")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "module=test")
	require.Contains(t, out, "result=failed")
}
