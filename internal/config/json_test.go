// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"base_url": "https://desk.example.com",
			"token_hash_key": "hash_secret",
			"csrf_sign_key": "csrf_secret",
			"csrf_token_duration": "45m"
		},
		"auth": {
			"min_password_length": 10,
			"trial_duration": "72h",
			"failed_login_window": "20m"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"secure_cookies": true
		},
		"storage": {
			"db": { "driver": "sqlite", "dsn": "file:desk.db" },
			"redis": { "addr": "localhost:6379", "db": 1 }
		},
		"mail": { "smtp_host": "smtp.example.com", "smtp_port": 465, "from": "desk@example.com" },
		"workers": { "sweep_interval": "10m" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://desk.example.com", cfg.App.BaseURL)
	assert.Equal(t, "hash_secret", cfg.App.TokenHashKey)
	assert.Equal(t, "csrf_secret", cfg.App.CSRFSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.CSRFTokenDuration)

	assert.Equal(t, 10, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 72*time.Hour, cfg.Auth.TrialDuration)
	assert.Equal(t, 20*time.Minute, cfg.Auth.FailedLoginWindow)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.SecureCookies)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:desk.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 1, cfg.Storage.Redis.DB)

	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, "desk@example.com", cfg.Mail.From)

	assert.Equal(t, 10*time.Minute, cfg.Workers.SweepInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"auth": {"session_ttl": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"90s"`, 90 * time.Second, false},
		{"nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"later"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(15 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"15m0s"`, string(b))
}
