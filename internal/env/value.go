// Package env provides environment variable lookup for option fallback values.
package env

import (
	"os"
	"strings"
)

func getEnv() map[string]string {
	envMap := map[string]string{}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
// Note that keys are compared case-insensitive.
func Val(key string, defaultVal string) string {
	envMap := getEnv()
	key = strings.ToLower(key)

	if val, ok := envMap[key]; ok {
		trimmed := strings.TrimSpace(val)
		if len(trimmed) == 0 {
			return defaultVal
		}
		return trimmed
	}
	return defaultVal
}
