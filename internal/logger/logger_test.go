package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		verbose bool
		debugOn bool
	}{
		{name: "default is info", verbose: false, debugOn: false},
		{name: "verbose enables debug", verbose: true, debugOn: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.verbose)
			require.NoError(t, err)
			assert.Equal(t, tc.debugOn, l.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
