// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (with envDefault policy defaults)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the HTTP server and
// [GetConfigWithoutFlags] for the admin CLI, which parses its own flags.
package config
