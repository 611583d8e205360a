// Package config provides configuration loading, merging, and validation
// facilities for the hashtrack client.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Command-line flags (--endpoint, --config, --log-level)
//  2. Environment variables (HASHTRACK_ prefix)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
