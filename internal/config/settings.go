package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const EnvPrefix = "ISSUETABS_"

// Settings configure the service itself. The tab document they point at is
// read separately on every request.
type Settings struct {
	Listen      string `koanf:"listen"`
	TabsFile    string `koanf:"tabs"`
	PublicDir   string `koanf:"public"`
	ViewsDir    string `koanf:"views"`
	UpstreamURL string `koanf:"upstream"`
	WebURL      string `koanf:"web"`
	LogFile     string `koanf:"log"`
	Verbosity   int    `koanf:"verbose"`
	SentryDSN   string `koanf:"sentry_dsn"`
}

func DefaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"listen":     ":3000",
		"tabs":       "data/config.json",
		"public":     "./public",
		"views":      "./views",
		"upstream":   "https://api.github.com",
		"web":        "https://github.com",
		"log":        "",
		"verbose":    0,
		"sentry_dsn": "",
	}
}

// LoadSettings layers defaults, ISSUETABS_* environment variables and the
// given overrides, later layers winning.
func LoadSettings(overrides map[string]interface{}) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(DefaultSettings(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("load overrides: %w", err)
		}
	}

	s := new(Settings)
	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return s, nil
}
