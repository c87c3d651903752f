package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/naiba/issue-tabs/internal/config"
	"github.com/naiba/issue-tabs/internal/logger"
)

var (
	settings *config.Settings
	log      *logrus.Entry
)

var rootCmd = &cobra.Command{
	Use:   "issue-tabs",
	Short: "Serve filtered GitHub issue and pull request tabs",
	Long: `issue-tabs proxies the GitHub issue search API through a set of tabs
defined in a JSON document. Each tab is a repository, an item type, a keyword
set and an optional blacklist applied to titles and label names.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultSettings()

	flags := rootCmd.PersistentFlags()
	flags.String("listen", defaults["listen"].(string), "Listen address")
	flags.StringP("tabs", "c", defaults["tabs"].(string), "Tab configuration file")
	flags.String("public", defaults["public"].(string), "Static asset directory")
	flags.String("views", defaults["views"].(string), "HTML template directory")
	flags.String("upstream", defaults["upstream"].(string), "GitHub API base URL")
	flags.String("web", defaults["web"].(string), "GitHub web base URL used for feed links")
	flags.StringP("log", "l", defaults["log"].(string), "Log file")
	flags.CountP("verbose", "v", "Verbose level")
	flags.String("sentry-dsn", defaults["sentry_dsn"].(string), "Sentry DSN for reporting upstream failures")
}

// changedFlags maps explicitly set flags to settings keys.
func changedFlags(fs *pflag.FlagSet) map[string]interface{} {
	changed := make(map[string]interface{})
	fs.Visit(func(f *pflag.Flag) {
		changed[strings.ReplaceAll(f.Name, "-", "_")] = f.Value.String()
	})
	return changed
}

func initCore() {
	var err error
	settings, err = config.LoadSettings(changedFlags(rootCmd.PersistentFlags()))
	if err != nil {
		fmt.Println("Failed loading settings:", err)
		os.Exit(1)
	}

	if err := logger.Init(settings.Verbosity, settings.LogFile); err != nil {
		fmt.Println("Failed initializing logging:", err)
		os.Exit(1)
	}
	log = logger.GetLogger("app")

	if settings.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: settings.SentryDSN}); err != nil {
			log.WithError(err).Fatal("Failed initializing sentry")
		}
	}

	logger.ShowUsing()
	log.Infof("Using TABS = %q", settings.TabsFile)
	log.Infof("Using UPSTREAM = %s", settings.UpstreamURL)
}
