// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses server configuration flags from args (typically
// os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (postgres or sqlite)
//	-c/-config json file path with configs
//	-base-url public base URL used in emails
//	-token-hash-key key used to hash stored tokens
//	-csrf-sign-key CSRF token signing key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-redis redis address for the login rate limiter
//	-smtp-host SMTP relay host
//	-sweep-interval expired records sweep interval (e.g., "1h")
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var baseURL string
	var tokenHashKey, csrfSignKey string
	var requestTimeout, sweepInterval time.Duration
	var redisAddr, smtpHost string
	var logLevel string

	fs := flag.NewFlagSet("go-leave-desk", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (postgres, sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&baseURL, "base-url", "", "Public base URL used in emails")
	fs.StringVar(&tokenHashKey, "token-hash-key", "", "Token hash key")
	fs.StringVar(&csrfSignKey, "csrf-sign-key", "", "CSRF token signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&redisAddr, "redis", "", "Redis address host:port")
	fs.StringVar(&smtpHost, "smtp-host", "", "SMTP host")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired records sweep interval (e.g., 1h)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			BaseURL:      baseURL,
			LogLevel:     logLevel,
			TokenHashKey: tokenHashKey,
			CSRFSignKey:  csrfSignKey,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Redis: Redis{
				Addr: redisAddr,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			Host: smtpHost,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. It validates the port range,
// checks IP correctness unless host is "localhost" or empty, and returns an
// error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
