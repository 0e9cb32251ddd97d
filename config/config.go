// Package config loads server and client settings with viper.
//
// Values come from built-in defaults, an optional config file and
// environment variables prefixed with BLACKJACK_, in increasing order of
// precedence. Nested keys map to variables by replacing dots with
// underscores: discovery.port is read from BLACKJACK_DISCOVERY_PORT.
package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "blackjack"

// DiscoveryPort is the well-known UDP port for offers.
const DiscoveryPort = 13122

// AutoAddress asks the server to broadcast on the subnet of its local interface.
const AutoAddress = "auto"

// Server holds the settings of cmd/server.
type Server struct {
	Name              string
	Listen            string
	DiscoveryPort     uint16
	DiscoveryAddress  string
	DiscoveryInterval time.Duration
	AcceptPoll        time.Duration
	HandshakeTimeout  time.Duration
	DealerPace        time.Duration
	RoundPause        time.Duration
	LogLevel          string
}

// Client holds the settings of cmd/client.
type Client struct {
	Team          string
	RoundsDefault uint8
	Server        string
	DiscoveryPort uint16
	DiscoveryPoll time.Duration
	LogLevel      string
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("discovery.port", DiscoveryPort)
	v.SetDefault("log.level", "info")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}
	return v, nil
}

// LoadServer reads the server configuration. An empty path skips the file.
func LoadServer(path string) (Server, error) {
	v, err := newViper(path)
	if err != nil {
		return Server{}, err
	}
	v.SetDefault("server.name", "Blackjack")
	v.SetDefault("server.listen", ":0")
	v.SetDefault("server.accept_poll", time.Second)
	v.SetDefault("server.handshake_timeout", 10*time.Second)
	v.SetDefault("discovery.address", "255.255.255.255")
	v.SetDefault("discovery.interval", time.Second)
	v.SetDefault("game.dealer_pace", 500*time.Millisecond)
	v.SetDefault("game.round_pause", time.Second)

	port, err := portOf(v, "discovery.port")
	if err != nil {
		return Server{}, err
	}
	cfg := Server{
		Name:              v.GetString("server.name"),
		Listen:            v.GetString("server.listen"),
		DiscoveryPort:     port,
		DiscoveryAddress:  v.GetString("discovery.address"),
		DiscoveryInterval: v.GetDuration("discovery.interval"),
		AcceptPoll:        v.GetDuration("server.accept_poll"),
		HandshakeTimeout:  v.GetDuration("server.handshake_timeout"),
		DealerPace:        v.GetDuration("game.dealer_pace"),
		RoundPause:        v.GetDuration("game.round_pause"),
		LogLevel:          v.GetString("log.level"),
	}
	err = nonNegative(map[string]time.Duration{
		"discovery.interval":       cfg.DiscoveryInterval,
		"server.accept_poll":       cfg.AcceptPoll,
		"server.handshake_timeout": cfg.HandshakeTimeout,
		"game.dealer_pace":         cfg.DealerPace,
		"game.round_pause":         cfg.RoundPause,
	})
	if err != nil {
		return Server{}, err
	}
	if cfg.DiscoveryInterval == 0 || cfg.AcceptPoll == 0 {
		return Server{}, fmt.Errorf("discovery.interval and server.accept_poll must be positive")
	}
	return cfg, nil
}

// LoadClient reads the client configuration. An empty path skips the file.
func LoadClient(path string) (Client, error) {
	v, err := newViper(path)
	if err != nil {
		return Client{}, err
	}
	v.SetDefault("client.team", "")
	v.SetDefault("client.rounds_default", 3)
	v.SetDefault("client.server", "")
	v.SetDefault("discovery.poll", time.Second)

	port, err := portOf(v, "discovery.port")
	if err != nil {
		return Client{}, err
	}
	rounds := v.GetInt("client.rounds_default")
	if rounds < 1 || rounds > math.MaxUint8 {
		return Client{}, fmt.Errorf("client.rounds_default %d out of range 1..%d", rounds, math.MaxUint8)
	}
	cfg := Client{
		Team:          v.GetString("client.team"),
		RoundsDefault: uint8(rounds),
		Server:        v.GetString("client.server"),
		DiscoveryPort: port,
		DiscoveryPoll: v.GetDuration("discovery.poll"),
		LogLevel:      v.GetString("log.level"),
	}
	if cfg.DiscoveryPoll <= 0 {
		return Client{}, fmt.Errorf("discovery.poll must be positive, got %v", cfg.DiscoveryPoll)
	}
	return cfg, nil
}

func portOf(v *viper.Viper, key string) (uint16, error) {
	port := v.GetInt(key)
	if port < 0 || port > math.MaxUint16 {
		return 0, fmt.Errorf("%s %d is not a valid port", key, port)
	}
	return uint16(port), nil
}

func nonNegative(durations map[string]time.Duration) error {
	for key, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %v", key, d)
		}
	}
	return nil
}
