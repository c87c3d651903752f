// Package search turns tab definitions into upstream search queries and
// post-filters the returned items.
package search

import (
	"strings"

	"github.com/samber/lo"

	"github.com/naiba/issue-tabs/internal/model"
)

// PageSize is the fixed number of items requested per upstream page.
const PageSize = 100

func BuildQuery(tab model.Tab) string {
	kind := "is:issue"
	if tab.IsPullRequests() {
		kind = "is:pr"
	}

	query := "repo:" + tab.Repo + " " + kind + " is:open"
	if len(tab.Keywords) > 0 {
		query += " (" + strings.Join(tab.Keywords, " OR ") + ")"
	}
	return query
}

// Filter drops every item whose title or any label name contains one of the
// blacklist terms, ignoring case. Remaining items keep their order.
func Filter(items []model.Item, blacklist []string) []model.Item {
	if len(blacklist) == 0 {
		return items
	}

	terms := lo.Map(blacklist, func(term string, _ int) string {
		return strings.ToLower(term)
	})

	return lo.Filter(items, func(item model.Item, _ int) bool {
		return !blacklisted(item, terms)
	})
}

func blacklisted(item model.Item, terms []string) bool {
	title := strings.ToLower(item.Title())
	labels := lo.Map(item.LabelNames(), func(name string, _ int) string {
		return strings.ToLower(name)
	})

	for _, term := range terms {
		if strings.Contains(title, term) {
			return true
		}
		if lo.ContainsBy(labels, func(label string) bool {
			return strings.Contains(label, term)
		}) {
			return true
		}
	}
	return false
}

func TotalPages(totalCount int64) int {
	if totalCount <= 0 {
		return 0
	}
	return int((totalCount + PageSize - 1) / PageSize)
}

// Annotate applies the blacklist to result and fills in the pagination
// fields. filtered_count is only set when a blacklist actually ran.
func Annotate(result *model.SearchResult, page int, blacklist []string) {
	if len(blacklist) > 0 {
		before := len(result.Items)
		result.Items = Filter(result.Items, blacklist)
		removed := before - len(result.Items)
		result.FilteredCount = &removed
	}

	result.Page = page
	result.TotalPages = TotalPages(result.TotalCount)
}
