package server

import (
	"errors"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/naiba/issue-tabs/internal/logger"
	"github.com/naiba/issue-tabs/internal/model"
)

const DefaultWebURL = "https://github.com"

// Searcher runs one upstream issue search for a page.
type Searcher interface {
	Search(query string, page int) (model.SearchResult, error)
}

type Options struct {
	// TabsFile is re-read on every request that needs the tab configuration.
	TabsFile  string
	PublicDir string
	// Views enables the HTML tab index at /tabs when set.
	Views fiber.Views
	// WebURL is the web root feed links point at, e.g. https://github.com.
	WebURL   string
	Searcher Searcher
}

type Server struct {
	tabsFile string
	webURL   string
	searcher Searcher
	feeds    singleflight.Group
	log      *logrus.Entry
}

func New(opts Options) *fiber.App {
	s := &Server{
		tabsFile: opts.TabsFile,
		webURL:   strings.TrimSuffix(opts.WebURL, "/"),
		searcher: opts.Searcher,
		log:      logger.GetLogger("server"),
	}
	if s.webURL == "" {
		s.webURL = DefaultWebURL
	}

	app := fiber.New(fiber.Config{
		Views:                 opts.Views,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
		UnescapePath:          true,
	})
	app.Use(recover.New())
	app.Use(s.logRequest)

	if opts.Views != nil {
		app.Get("/tabs", s.index)
	}

	api := app.Group("/api")
	api.Get("/config", s.getConfig)
	api.Get("/tab/:tabId", s.getTab)
	for name, tab := range legacyTabs {
		api.Get("/"+name, s.getLegacy(tab))
	}

	app.Get("/feed/:tabId", s.getFeed)

	if opts.PublicDir != "" {
		app.Static("/", opts.PublicDir)
	}

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	entry := s.log.WithFields(logrus.Fields{
		"method":   c.Method(),
		"path":     c.Path(),
		"duration": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Debug("Request failed")
	} else {
		entry.WithField("status", c.Response().StatusCode()).Trace("Request served")
	}
	return err
}

// upstreamFailure logs and reports err and turns it into a 500 that carries
// the upstream message.
func (s *Server) upstreamFailure(what string, err error) error {
	s.log.WithError(err).Errorf("Failed fetching %s", what)
	sentry.CaptureException(err)
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
