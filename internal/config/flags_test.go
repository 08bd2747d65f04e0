package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Host: "", Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, rest, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-driver", "sqlite",
		"-d", "file:products.db",
		"-config", "/etc/products.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-request-timeout", "15s",
		"-log-level", "warn",
		"-server", "http://127.0.0.1:9000",
		"-client-timeout", "3s",
		"-token", "abc",
		"list",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"list"}, rest)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:products.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/products.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "abc", cfg.Adapter.Token)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, rest, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, _, err := parseFlags([]string{"-a", "nope"})
	assert.Error(t, err)
}
