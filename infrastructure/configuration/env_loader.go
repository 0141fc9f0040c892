package configuration

import (
	"os"
	"strings"
)

// LoadEnvFromFile loads KEY=VALUE pairs from one or more files (config.env,
// .env). Comment lines and blanks are skipped. Variables already present in
// the environment are never overridden.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(raw), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, val, found := strings.Cut(line, "=")
			if !found {
				continue
			}
			key = strings.TrimSpace(key)
			// Support KEY=VALUE and KEY="VALUE"
			val = strings.Trim(strings.TrimSpace(val), "\"'")
			if key == "" {
				continue
			}
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
