// Package config loads application configuration from environment variables
// into tagged structs, optionally sourcing a .env file first.
package config
