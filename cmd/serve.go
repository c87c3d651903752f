package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/spf13/cobra"

	"github.com/naiba/issue-tabs/internal/github"
	"github.com/naiba/issue-tabs/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initCore()
		defer sentry.Flush(2 * time.Second)

		var views fiber.Views
		if info, err := os.Stat(settings.ViewsDir); err == nil && info.IsDir() {
			views = html.New(settings.ViewsDir, ".html")
		}

		app := server.New(server.Options{
			TabsFile:  settings.TabsFile,
			PublicDir: settings.PublicDir,
			Views:     views,
			WebURL:    settings.WebURL,
			Searcher:  github.NewClient(settings.UpstreamURL),
		})

		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			log.Info("Shutting down")
			if err := app.Shutdown(); err != nil {
				log.WithError(err).Error("Failed shutting down server")
			}
		}()

		log.Infof("Listening on %s", settings.Listen)
		if err := app.Listen(settings.Listen); err != nil {
			log.WithError(err).Fatal("Server failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.Run = serveCmd.Run
}
