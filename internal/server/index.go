package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naiba/issue-tabs/internal/config"
)

func (s *Server) index(c *fiber.Ctx) error {
	cfg := config.LoadOrEmpty(s.tabsFile)
	return c.Render("index", fiber.Map{
		"Tabs": cfg.Tabs,
	})
}
