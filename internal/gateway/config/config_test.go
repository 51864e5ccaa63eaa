package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddrHTTP, ":8080")
	assert.Equal(t, c.AuthEndpointAddr, "localhost:50051")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.AppID, "gateway")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddrHTTP, ":8080")
	assert.Equal(t, c.AuthEndpointAddr, "localhost:50051")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.AppID, "gateway")
}
