// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config
// file. Durations accept Go duration strings ("15m") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version           string   `json:"version"`
		BaseURL           string   `json:"base_url"`
		LogLevel          string   `json:"log_level"`
		TokenHashKey      string   `json:"token_hash_key"`
		CSRFSignKey       string   `json:"csrf_sign_key"`
		CSRFIssuer        string   `json:"csrf_issuer"`
		CSRFTokenDuration Duration `json:"csrf_token_duration"`
	} `json:"app,omitempty"`

	Auth struct {
		MinPasswordLength      int      `json:"min_password_length"`
		MinNameLength          int      `json:"min_name_length"`
		BcryptCost             int      `json:"bcrypt_cost"`
		TrialDuration          Duration `json:"trial_duration"`
		PendingVerificationTTL Duration `json:"pending_verification_ttl"`
		SessionTTL             Duration `json:"session_ttl"`
		RememberMeSessionTTL   Duration `json:"remember_me_session_ttl"`
		PasswordResetTTL       Duration `json:"password_reset_ttl"`
		PasswordResetCooldown  Duration `json:"password_reset_cooldown"`
		MaxFailedLogins        int      `json:"max_failed_logins"`
		FailedLoginWindow      Duration `json:"failed_login_window"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr      string `json:"addr"`
			Password  string `json:"password"`
			DB        int    `json:"db"`
			KeyPrefix string `json:"key_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		SecureCookies   bool     `json:"secure_cookies"`
	} `json:"server,omitempty"`

	Mail struct {
		APIURL     string   `json:"api_url"`
		APIKey     string   `json:"api_key"`
		APITimeout Duration `json:"api_timeout"`
		Host       string   `json:"smtp_host"`
		Port       int      `json:"smtp_port"`
		Username   string   `json:"smtp_username"`
		Password   string   `json:"smtp_password"`
		From       string   `json:"from"`
	} `json:"mail,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:           j.App.Version,
			BaseURL:           j.App.BaseURL,
			LogLevel:          j.App.LogLevel,
			TokenHashKey:      j.App.TokenHashKey,
			CSRFSignKey:       j.App.CSRFSignKey,
			CSRFIssuer:        j.App.CSRFIssuer,
			CSRFTokenDuration: time.Duration(j.App.CSRFTokenDuration),
		},
		Auth: Auth{
			MinPasswordLength:      j.Auth.MinPasswordLength,
			MinNameLength:          j.Auth.MinNameLength,
			BcryptCost:             j.Auth.BcryptCost,
			TrialDuration:          time.Duration(j.Auth.TrialDuration),
			PendingVerificationTTL: time.Duration(j.Auth.PendingVerificationTTL),
			SessionTTL:             time.Duration(j.Auth.SessionTTL),
			RememberMeSessionTTL:   time.Duration(j.Auth.RememberMeSessionTTL),
			PasswordResetTTL:       time.Duration(j.Auth.PasswordResetTTL),
			PasswordResetCooldown:  time.Duration(j.Auth.PasswordResetCooldown),
			MaxFailedLogins:        j.Auth.MaxFailedLogins,
			FailedLoginWindow:      time.Duration(j.Auth.FailedLoginWindow),
		},
		Storage: Storage{
			DB: DB{
				Driver: j.Storage.DB.Driver,
				DSN:    j.Storage.DB.DSN,
			},
			Redis: Redis{
				Addr:      j.Storage.Redis.Addr,
				Password:  j.Storage.Redis.Password,
				DB:        j.Storage.Redis.DB,
				KeyPrefix: j.Storage.Redis.KeyPrefix,
			},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
			SecureCookies:   j.Server.SecureCookies,
		},
		Mail: Mail{
			APIURL:     j.Mail.APIURL,
			APIKey:     j.Mail.APIKey,
			APITimeout: time.Duration(j.Mail.APITimeout),
			Host:       j.Mail.Host,
			Port:       j.Mail.Port,
			Username:   j.Mail.Username,
			Password:   j.Mail.Password,
			From:       j.Mail.From,
		},
		Workers: Workers{
			SweepInterval: time.Duration(j.Workers.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
