package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/mo"

	"github.com/naiba/issue-tabs/internal/logger"
	"github.com/naiba/issue-tabs/internal/model"
)

var log = logger.GetLogger("cfg")

// Load reads and decodes the tab document at path.
func Load(path string) mo.Result[model.Config] {
	content, err := os.ReadFile(path)
	if err != nil {
		return mo.Err[model.Config](fmt.Errorf("read %s: %w", path, err))
	}
	var config model.Config
	if err := json.Unmarshal(content, &config); err != nil {
		return mo.Err[model.Config](fmt.Errorf("parse %s: %w", path, err))
	}
	if config.Tabs == nil {
		config.Tabs = []model.Tab{}
	}
	return mo.Ok(config)
}

// LoadOrEmpty is Load that never fails: a broken or missing document is logged
// and treated as a configuration without tabs.
func LoadOrEmpty(path string) model.Config {
	res := Load(path)
	if res.IsError() {
		log.WithError(res.Error()).Error("Failed loading tab configuration, serving no tabs")
		return model.Config{Tabs: []model.Tab{}}
	}
	return res.MustGet()
}
