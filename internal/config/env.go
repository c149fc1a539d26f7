// Package config reads deployment settings from the environment.
package config

import "os"

// GetEnv returns the environment variable named by key, falling back to
// fallback when the variable is unset. An empty value counts as set.
func GetEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}
