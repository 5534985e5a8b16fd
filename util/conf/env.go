package conf

import (
	"fmt"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadEnvFile reads the variables of a dotenv file. Keys are
// kept verbatim, they are not split into nested config keys.
func LoadEnvFile(path string) (map[string]string, error) {
	// the delimiter never occurs in env var names
	k := koanf.New("\x00")

	if err := k.Load(file.Provider(path), dotenv.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	vars := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		vars[key] = k.String(key)
	}

	return vars, nil
}
