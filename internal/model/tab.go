package model

const (
	TabTypeIssues = "issues"
	TabTypePRs    = "prs"
)

type Tab struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Repo     string   `json:"repo"`
	Type     string   `json:"type,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	// Blacklist is nil when the tab does not declare one. A declared empty
	// list still replaces the global blacklist.
	Blacklist *[]string `json:"blacklist,omitempty"`
}

func (t Tab) IsPullRequests() bool {
	return t.Type == TabTypePRs
}
