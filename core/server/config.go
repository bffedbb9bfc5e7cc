package server

import "net"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8008"`
	// Name is the service name reported in startup logs.
	Name string `mapstructure:"name" default:"number-management-service"`
}

// Address returns the listen address for the configured host and port.
func (c Config) Address() string {
	port := c.Port
	if port == "" {
		port = DefaultPort
	}
	return net.JoinHostPort(c.Host, port)
}

// DefaultPort is used when no port is configured.
const DefaultPort = "8008"
