package model

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Item is one upstream issue or pull request, kept as the raw JSON object so
// that every field reaches the client untouched.
type Item struct {
	Raw json.RawMessage
}

func (i Item) Title() string {
	return gjson.GetBytes(i.Raw, "title").String()
}

func (i Item) LabelNames() []string {
	var names []string
	gjson.GetBytes(i.Raw, "labels.#.name").ForEach(func(_, value gjson.Result) bool {
		names = append(names, value.String())
		return true
	})
	return names
}

// Get reads an arbitrary gjson path from the item.
func (i Item) Get(path string) gjson.Result {
	return gjson.GetBytes(i.Raw, path)
}

func (i Item) MarshalJSON() ([]byte, error) {
	if len(i.Raw) == 0 {
		return []byte("null"), nil
	}
	return i.Raw, nil
}

func (i *Item) UnmarshalJSON(b []byte) error {
	i.Raw = append(i.Raw[:0], b...)
	return nil
}

type SearchResult struct {
	TotalCount        int64  `json:"total_count"`
	IncompleteResults bool   `json:"incomplete_results"`
	Items             []Item `json:"items"`

	Page          int  `json:"page"`
	TotalPages    int  `json:"total_pages"`
	FilteredCount *int `json:"filtered_count,omitempty"`
}
