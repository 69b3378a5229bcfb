package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv("BOARD_SERVER_PORT", "9090")
	t.Setenv("BOARD_JWT_SECRET", "from-env")
	t.Setenv("BOARD_PAGING_MAX_PAGE_SIZE", "20")

	require.NoError(t, LoadConfig())
	require.NotNil(t, Cfg)

	assert.Equal(t, 9090, Cfg.Server.Port)
	assert.Equal(t, "from-env", Cfg.JWT.Secret)
	assert.Equal(t, 24, Cfg.JWT.ExpireHours)
	assert.Equal(t, 10, Cfg.Paging.DefaultPageSize)
	assert.Equal(t, 20, Cfg.Paging.MaxPageSize)
	assert.Empty(t, Cfg.Logstash.Address)
}
