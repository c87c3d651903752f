package model

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type Config struct {
	Tabs      []Tab    `json:"tabs"`
	Blacklist []string `json:"blacklist,omitempty"`
}

// FindTab returns the first tab declared with the given id.
func (c Config) FindTab(id string) mo.Option[Tab] {
	tab, ok := lo.Find(c.Tabs, func(tab Tab) bool {
		return tab.ID == id
	})
	if !ok {
		return mo.None[Tab]()
	}
	return mo.Some(tab)
}

// BlacklistFor returns the tab's own blacklist when it declares one, otherwise
// the global blacklist.
func (c Config) BlacklistFor(tab Tab) []string {
	if tab.Blacklist != nil {
		return *tab.Blacklist
	}
	return c.Blacklist
}
