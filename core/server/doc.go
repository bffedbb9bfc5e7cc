// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the settings it reads (bind host, port and the service name used in
// the startup log line).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by cmd/start to compute the listen address:
//
//	app.Listen(cfg.Server.Address())
package server
