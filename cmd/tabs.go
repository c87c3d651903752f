package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/naiba/issue-tabs/internal/config"
	"github.com/naiba/issue-tabs/internal/search"
)

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Validate the tab configuration and show each tab's query",

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initCore()

		res := config.Load(settings.TabsFile)
		if res.IsError() {
			log.WithError(res.Error()).Fatal("Failed loading tab configuration")
		}
		cfg := res.MustGet()

		seen := make(map[string]bool)
		for _, tab := range cfg.Tabs {
			if seen[tab.ID] {
				log.Warnf("Duplicate tab id %q, only the first declaration is served", tab.ID)
				continue
			}
			seen[tab.ID] = true

			log.Infof("%s (%s): %s", tab.ID, tab.Label, search.BuildQuery(tab))
			if blacklist := cfg.BlacklistFor(tab); len(blacklist) > 0 {
				log.Infof("%s blacklist: %s", tab.ID, strings.Join(blacklist, ", "))
			}
		}
		log.Infof("Loaded %d tabs", len(seen))
	},
}

func init() {
	rootCmd.AddCommand(tabsCmd)
}
