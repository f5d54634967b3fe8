package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:9090", want: NetAddress{Host: "0.0.0.0", Port: 9090}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "no port", input: "localhost", expectError: true},
		{name: "bad port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8081",
		"-grpc-address", "localhost:9091",
		"-d", "postgres://flag",
		"-config", "/etc/flashcards.json",
		"-token-sign-key", "key",
		"-token-issuer", "issuer",
		"-token-duration", "48h",
		"-request-timeout", "10s",
		"-strict-ownership",
		"-images-backend", "s3",
		"-images-dir", "/srv/images",
		"-server-url", "http://api:8080",
		"-local-db", "client.db",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://flag", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/flashcards.json", cfg.JSONFilePath)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 48*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.App.StrictOwnership)
	assert.Equal(t, "s3", cfg.Storage.Images.Backend)
	assert.Equal(t, "/srv/images", cfg.Storage.Images.Dir)
	assert.Equal(t, "http://api:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "client.db", cfg.Storage.Local.DSN)
}

func TestParseFlags_NoArgsLeavesZeroValues(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nonsense"})
	assert.Error(t, err)
}
