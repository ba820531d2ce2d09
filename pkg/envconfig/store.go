package envconfig

import (
	"kopikita/pkg/localstore"
)

// LoadStoreConfig loads local store configuration from environment
// variables, falling back to package defaults.
func LoadStoreConfig() localstore.Config {
	config := localstore.DefaultConfig()

	if path := GetEnv("STORE_PATH", ""); path != "" {
		config.Path = path
	}

	if timeout := GetEnvDuration("STORE_OPEN_TIMEOUT", 0); timeout > 0 {
		config.Timeout = timeout
	}

	return config
}
