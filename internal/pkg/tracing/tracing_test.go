package tracing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dex-api/internal/pkg/tracing"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := tracing.Setup(context.Background(), "", "dex-api")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}
