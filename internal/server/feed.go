package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/feeds"

	"github.com/naiba/issue-tabs/internal/config"
	"github.com/naiba/issue-tabs/internal/model"
	"github.com/naiba/issue-tabs/internal/search"
)

// getFeed renders the first page of a tab as RSS. Identical concurrent
// requests share one upstream call.
func (s *Server) getFeed(c *fiber.Ctx) error {
	id := c.Params("tabId")
	cfg := config.LoadOrEmpty(s.tabsFile)

	tab, ok := cfg.FindTab(id).Get()
	if !ok {
		return tabNotFound(id)
	}

	blacklist := cfg.BlacklistFor(tab)
	key := fmt.Sprintf("%s|%s|%q", id, search.BuildQuery(tab), blacklist)
	content, err, _ := s.feeds.Do(key, func() (any, error) {
		result, err := s.fetch(tab, 1, blacklist)
		if err != nil {
			return "", err
		}
		return buildFeed(s.webURL, tab, result).ToRss()
	})
	if err != nil {
		return s.upstreamFailure(fmt.Sprintf("feed %q", id), err)
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	_, err = c.WriteString(content.(string))
	return err
}

func buildFeed(webURL string, tab model.Tab, result model.SearchResult) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       tab.Label,
		Link:        &feeds.Link{Href: webURL + "/" + tab.Repo},
		Description: search.BuildQuery(tab),
		Created:     time.Now(),
	}

	for _, item := range result.Items {
		entry := &feeds.Item{
			Title:       item.Title(),
			Link:        &feeds.Link{Href: item.Get("html_url").String()},
			Id:          item.Get("html_url").String(),
			Description: item.Get("body").String(),
			Created:     item.Get("created_at").Time(),
			Updated:     item.Get("updated_at").Time(),
		}
		if login := item.Get("user.login").String(); login != "" {
			entry.Author = &feeds.Author{Name: login}
		}
		feed.Items = append(feed.Items, entry)
	}
	return feed
}
