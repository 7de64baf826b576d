package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.Equal(t, int64(100), cfg.MinReviewFee)
	assert.Equal(t, time.Hour, cfg.DecryptionTimeout)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.GatewayKey)
	assert.Empty(t, cfg.GatewayEndpoint, "default mode is the in-process simulator")
}

func TestLoadConfig_NoArgs(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"server"}

	cfg := LoadConfig()
	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.Equal(t, time.Hour, cfg.DecryptionTimeout)
}
