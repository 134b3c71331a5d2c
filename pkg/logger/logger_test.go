package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRespetaElNivelConfigurado(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verboso", zerolog.InfoLevel}, // desconocido: info
		{"", zerolog.InfoLevel},
	}

	for _, tc := range cases {
		l := New(Config{Env: "production", Level: tc.level})
		assert.Equal(t, tc.want, l.Zerolog().GetLevel(), "nivel %q", tc.level)
	}
}
