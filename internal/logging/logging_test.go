package logging

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup_MapsVerbosityToLevel_When_CountVaries(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.ErrorLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tc := range tests {
		Setup(tc.verbosity)
		assert.Equal(t, tc.want, zerolog.GlobalLevel(), "verbosity %d", tc.verbosity)
	}

	Setup(0)
}

func TestGetLogger_TagsComponent_When_Logging(t *testing.T) {
	var buf strings.Builder
	logger := GetLogger("sink").Output(&buf).Level(zerolog.TraceLevel)

	logger.Error().Msg("write failed")

	assert.Contains(t, buf.String(), `"component":"sink"`)
	assert.Contains(t, buf.String(), "write failed")
}

func TestGetLogger_SupportsInlineLevelCalls_When_ChainedOnReturn(t *testing.T) {
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf strings.Builder
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	// Trace and Debug take a *Logger; callers chain them straight off the
	// return value without a local.
	GetLogger("sink").Trace().Msg("buffered write dropped")
	GetLogger("json").Debug().Msg("payload rejected")

	assert.Contains(t, buf.String(), `"component":"sink"`)
	assert.Contains(t, buf.String(), "buffered write dropped")
	assert.Contains(t, buf.String(), `"component":"json"`)
	assert.Contains(t, buf.String(), "payload rejected")
}
