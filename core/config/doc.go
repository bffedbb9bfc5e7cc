// Package config provides configuration management for the number service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP bind host, port and service name
//   - Log: Logging level and format
//   - Remote: User agent and connection pooling for outbound source requests
//
// Defaults come from the `default` struct tags of each section. Environment
// variables use the SECTION_KEY form, e.g. SERVER_PORT or LOG_LEVEL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
