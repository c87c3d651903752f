package github

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lucperkins/rek"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/naiba/issue-tabs/internal/logger"
	"github.com/naiba/issue-tabs/internal/model"
	"github.com/naiba/issue-tabs/internal/search"
)

const (
	DefaultBaseURL = "https://api.github.com"

	acceptHeader = "application/vnd.github.v3+json"
	userAgent    = "issue-tabs"
)

// StatusError is returned when the search API answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return "GitHub API error: " + e.Status
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Entry
}

// NewClient returns a search client for baseURL. The underlying http.Client
// has no timeout; a hanging upstream keeps the request open.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     logger.GetLogger("github"),
	}
}

func (c *Client) searchURL(query string, page int) (string, error) {
	endpoint, err := url.JoinPath(c.baseURL, "search", "issues")
	if err != nil {
		return "", errors.Wrap(err, "build search url")
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("per_page", strconv.Itoa(search.PageSize))
	q.Set("page", strconv.Itoa(page))
	q.Set("sort", "updated")
	q.Set("order", "desc")
	return endpoint + "?" + q.Encode(), nil
}

// Search runs one issue search for the given page.
func (c *Client) Search(query string, page int) (model.SearchResult, error) {
	var result model.SearchResult
	target, err := c.searchURL(query, page)
	if err != nil {
		return result, err
	}

	c.log.Tracef("Sending request to %s", target)
	resp, err := rek.Get(target, rek.Client(c.http), rek.Headers(map[string]string{
		"Accept":     acceptHeader,
		"User-Agent": userAgent,
	}))
	if err != nil {
		return result, errors.Wrap(err, "request search")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return result, &StatusError{Code: resp.StatusCode(), Status: resp.Status()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return result, errors.Wrap(err, "read search response")
	}
	if !gjson.ValidBytes(body) {
		return result, errors.New("decode search response: invalid json")
	}

	result.TotalCount = gjson.GetBytes(body, "total_count").Int()
	result.IncompleteResults = gjson.GetBytes(body, "incomplete_results").Bool()
	result.Items = []model.Item{}
	gjson.GetBytes(body, "items").ForEach(func(_, value gjson.Result) bool {
		result.Items = append(result.Items, model.Item{Raw: json.RawMessage(value.Raw)})
		return true
	})

	c.log.Debugf("Search %q page %d returned %d items (total %d)", query, page, len(result.Items), result.TotalCount)
	return result, nil
}
