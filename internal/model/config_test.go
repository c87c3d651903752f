package model

import (
	"encoding/json"
	"testing"
)

func TestConfigDecodeBlacklistPresence(t *testing.T) {
	raw := `{
		"tabs": [
			{"id": "a", "label": "A", "repo": "x/y", "type": "issues"},
			{"id": "b", "label": "B", "repo": "x/y", "type": "prs", "blacklist": []},
			{"id": "c", "label": "C", "repo": "x/y", "blacklist": ["wip"]}
		],
		"blacklist": ["gpu"]
	}`

	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := cfg.BlacklistFor(cfg.Tabs[0]); len(got) != 1 || got[0] != "gpu" {
		t.Errorf("tab a: expected global blacklist, got %v", got)
	}
	if got := cfg.BlacklistFor(cfg.Tabs[1]); len(got) != 0 {
		t.Errorf("tab b: expected explicit empty blacklist to win, got %v", got)
	}
	if got := cfg.BlacklistFor(cfg.Tabs[2]); len(got) != 1 || got[0] != "wip" {
		t.Errorf("tab c: expected own blacklist, got %v", got)
	}
	if !cfg.Tabs[1].IsPullRequests() || cfg.Tabs[0].IsPullRequests() {
		t.Error("unexpected type detection")
	}
}

func TestConfigFindTabFirstWins(t *testing.T) {
	cfg := Config{Tabs: []Tab{
		{ID: "dup", Label: "first"},
		{ID: "dup", Label: "second"},
	}}

	tab, ok := cfg.FindTab("dup").Get()
	if !ok {
		t.Fatal("expected tab to be found")
	}
	if tab.Label != "first" {
		t.Errorf("expected first declared tab, got %q", tab.Label)
	}

	if cfg.FindTab("missing").IsPresent() {
		t.Error("expected missing tab to be absent")
	}
}

func TestItemPassthrough(t *testing.T) {
	raw := `{"title":"Fix AMDGPU codegen","number":7,"labels":[{"name":"backend:AMDGPU","color":"ff0000"},{"name":"bug"}]}`

	var item Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if item.Title() != "Fix AMDGPU codegen" {
		t.Errorf("unexpected title %q", item.Title())
	}
	names := item.LabelNames()
	if len(names) != 2 || names[0] != "backend:AMDGPU" || names[1] != "bug" {
		t.Errorf("unexpected labels %v", names)
	}

	out, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != raw {
		t.Errorf("expected raw passthrough, got %s", out)
	}
}
