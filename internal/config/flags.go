package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses configuration flags from args and returns the resulting
// partial config together with the remaining positional arguments (the
// client's sub-command).
//
// Flags:
//
//	-a placeholder backend listen address in format [host]:[port]
//	-server-timeout placeholder backend request timeout (e.g. "30s")
//	-addr KARDASH API base address (e.g. "http://localhost:8000")
//	-request-timeout outbound request timeout (e.g. "10s"), 0 disables it
//	-d session database DSN
//	-c/-config json file path with configs
//	-token-slot name of the session token slot
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "1h", "30m")
//	-poll-interval notification poll interval (e.g. "30s")
//	-log-level log level
//	-log-dir client log directory
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var serverTimeout time.Duration
	var adapterAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var jsonConfigPath string
	var tokenSlot string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var pollInterval time.Duration
	var logLevel string
	var logDir string

	fs := flag.NewFlagSet("kardash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.StringVar(&adapterAddress, "addr", "", "KARDASH API base address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 10s)")
	fs.StringVar(&databaseDSN, "d", "", "Session database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSlot, "token-slot", "", "Session token slot name")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Notification poll interval (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSlot:     tokenSlot,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
			LogDir:        logDir,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be between 1 and 65535")
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
