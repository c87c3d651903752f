package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/naiba/issue-tabs/internal/config"
	"github.com/naiba/issue-tabs/internal/model"
	"github.com/naiba/issue-tabs/internal/search"
)

func pageParam(c *fiber.Ctx) int {
	return parsePage(c.Query("page"))
}

// parsePage reads the leading integer of raw, so "3.7" and "2abc" are pages
// 3 and 2. Anything without one, or below 1, is page 1.
func parsePage(raw string) int {
	raw = strings.TrimLeft(raw, " \t\n\r")
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}

	page, err := strconv.Atoi(raw[:end])
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func tabNotFound(id string) error {
	return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Tab '%s' not found in configuration", id))
}

func (s *Server) getConfig(c *fiber.Ctx) error {
	return c.JSON(config.LoadOrEmpty(s.tabsFile))
}

func (s *Server) getTab(c *fiber.Ctx) error {
	id := c.Params("tabId")
	cfg := config.LoadOrEmpty(s.tabsFile)

	tab, ok := cfg.FindTab(id).Get()
	if !ok {
		return tabNotFound(id)
	}

	result, err := s.fetch(tab, pageParam(c), cfg.BlacklistFor(tab))
	if err != nil {
		return s.upstreamFailure(fmt.Sprintf("tab %q", id), err)
	}
	return c.JSON(result)
}

func (s *Server) fetch(tab model.Tab, page int, blacklist []string) (model.SearchResult, error) {
	result, err := s.searcher.Search(search.BuildQuery(tab), page)
	if err != nil {
		return result, err
	}
	search.Annotate(&result, page, blacklist)
	return result, nil
}
