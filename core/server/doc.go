// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure and derived values such as the listen
// address and the upload body limit.
//
// # Configuration
//
// The Config struct defines the HTTP port, the optional API key, the maximum
// upload size and the name of the session cookie.
package server
