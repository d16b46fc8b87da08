package repository

import "os"

// getenvDefault resolves collection-name overrides.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
