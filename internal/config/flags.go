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

// ParseFlags parses command-line flags from args.
//
// Flags:
//
//	-u user id admitted by the client
//	-a sync server listen address in format [host]:[port]
//	-s sync server address used by the client
//	-d SQLite DSN
//	-c/-config json file path with configs
//	-hash-key upload integrity hash key
//	-token-key bearer token sign key
//	-default-image avatar index for a newly admitted user
//	-log-dir client log directory
//	-request-timeout request timeout for server and client (e.g. "30s")
//	-sync-interval client sync period (e.g. "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("avatar-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var userID string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var tokenSignKey string
	var defaultImageIndex int
	var logDir string
	var requestTimeout time.Duration
	var syncInterval time.Duration

	fs.StringVar(&userID, "u", "", "User id")
	fs.Var(&serverAddress, "a", "Sync server listen address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Sync server address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Upload integrity hash key")
	fs.StringVar(&tokenSignKey, "token-key", "", "Bearer token sign key")
	fs.IntVar(&defaultImageIndex, "default-image", 0, "Avatar index for a newly admitted user")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Client sync interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			UserID:            userID,
			HashKey:           hashKey,
			TokenSignKey:      tokenSignKey,
			DefaultImageIndex: defaultImageIndex,
			LogDir:            logDir,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SyncInterval: syncInterval},
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
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
