package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// binaries defer Shutdown on the zero value when no telemetry config
// exists, so it must tolerate nil providers
func TestShutdownZeroValue(t *testing.T) {
	require.NoError(t, Telemetry{}.Shutdown(context.Background()))
}
