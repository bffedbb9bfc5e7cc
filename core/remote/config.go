package remote

// Config holds configuration for outbound source requests.
type Config struct {
	// UserAgent is sent with every request to a source.
	UserAgent string `mapstructure:"user_agent" default:"number-management-service"`
	// MaxIdleConnsPerHost bounds the idle keep-alive connections kept per source host.
	MaxIdleConnsPerHost int `mapstructure:"max_idle_conns_per_host" default:"16"`
}
