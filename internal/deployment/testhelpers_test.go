package deployment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/podctl/internal/config"
)

func defaultRequest(t *testing.T) Request {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return NewRequest(cfg)
}
