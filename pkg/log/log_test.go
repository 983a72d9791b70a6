package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"":        logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"ERROR":   logrus.ErrorLevel,
		"garbage": logrus.DebugLevel,
	}

	for in, want := range cases {
		require.Equal(t, want, parseLevel(in), in)
	}
}

func TestErrorWithTraceID(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	require.Equal(t, "req-1", ErrorWithTraceID(Fields{RequestIDKey: "req-1"}, "boom"))
	require.NotEqual(t, "unknown", ErrorWithTraceID(nil, "boom"))
	require.NotEqual(t, "unknown", ErrorWithTraceID(Fields{RequestIDKey: "unknown"}, "boom"))
}

func TestWithRequestID(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-2")
	require.Equal(t, "req-2", WithRequestID(ctx).Data[RequestIDKey])
	require.Equal(t, "unknown", WithRequestID(context.Background()).Data[RequestIDKey])
}
