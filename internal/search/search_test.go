package search

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"

	"github.com/naiba/issue-tabs/internal/model"
)

func item(t *testing.T, title string, labels ...string) model.Item {
	t.Helper()

	obj := map[string]any{
		"title": title,
		"labels": lo.Map(labels, func(name string, _ int) map[string]string {
			return map[string]string{"name": name}
		}),
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal item: %v", err)
	}
	return model.Item{Raw: raw}
}

func titles(items []model.Item) []string {
	return lo.Map(items, func(i model.Item, _ int) string {
		return i.Title()
	})
}

func TestBuildQuery(t *testing.T) {
	var cases = []lo.Tuple2[model.Tab, string]{
		{
			A: model.Tab{Repo: "llvm/llvm-project", Type: "issues", Keywords: []string{"AMDGPU", "AMDGCN"}},
			B: "repo:llvm/llvm-project is:issue is:open (AMDGPU OR AMDGCN)",
		},
		{
			A: model.Tab{Repo: "x/y", Type: "prs", Keywords: []string{}},
			B: "repo:x/y is:pr is:open",
		},
		{
			A: model.Tab{Repo: "x/y"},
			B: "repo:x/y is:issue is:open",
		},
		{
			A: model.Tab{Repo: "x/y", Type: "whatever", Keywords: []string{"SPIR-V"}},
			B: "repo:x/y is:issue is:open (SPIR-V)",
		},
		{
			A: model.Tab{Repo: "not a repo", Type: "prs", Keywords: []string{"a b", "a b"}},
			B: "repo:not a repo is:pr is:open (a b OR a b)",
		},
	}

	for _, c := range cases {
		if res := BuildQuery(c.A); res != c.B {
			t.Errorf("BuildQuery(%+v) %q != %q", c.A, res, c.B)
		}
	}
}

func TestFilterEmptyBlacklistIsIdentity(t *testing.T) {
	items := []model.Item{item(t, "one"), item(t, "two", "gpu")}

	for _, blacklist := range [][]string{nil, {}} {
		res := Filter(items, blacklist)
		if len(res) != len(items) {
			t.Fatalf("expected %d items, got %d", len(items), len(res))
		}
		for i := range res {
			if string(res[i].Raw) != string(items[i].Raw) {
				t.Errorf("item %d changed", i)
			}
		}
	}
}

func TestFilterMatchesTitleCaseInsensitive(t *testing.T) {
	items := []model.Item{
		item(t, "Fix AMDGPU codegen"),
		item(t, "Unrelated crash"),
	}

	res := Filter(items, []string{"gpu"})
	if got := titles(res); len(got) != 1 || got[0] != "Unrelated crash" {
		t.Errorf("unexpected result %v", got)
	}

	res = Filter(items, []string{"GPU"})
	if got := titles(res); len(got) != 1 || got[0] != "Unrelated crash" {
		t.Errorf("upper-case term: unexpected result %v", got)
	}
}

func TestFilterMatchesLabelNames(t *testing.T) {
	items := []model.Item{
		item(t, "first", "bug"),
		item(t, "second", "backend:AMDGPU", "bug"),
		item(t, "third"),
	}

	res := Filter(items, []string{"amdgpu"})
	got := titles(res)
	if len(got) != 2 || got[0] != "first" || got[1] != "third" {
		t.Errorf("unexpected result %v", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	items := []model.Item{
		item(t, "a"),
		item(t, "drop me"),
		item(t, "b"),
		item(t, "c", "DROP"),
		item(t, "d"),
	}

	got := titles(Filter(items, []string{"nothing", "drop"}))
	want := []string{"a", "b", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTotalPages(t *testing.T) {
	var cases = []lo.Tuple2[int64, int]{
		{A: 0, B: 0},
		{A: 1, B: 1},
		{A: 100, B: 1},
		{A: 101, B: 2},
		{A: 250, B: 3},
	}

	for _, c := range cases {
		if res := TotalPages(c.A); res != c.B {
			t.Errorf("TotalPages(%d) %d != %d", c.A, res, c.B)
		}
	}
}

func TestAnnotate(t *testing.T) {
	result := &model.SearchResult{
		TotalCount: 250,
		Items:      []model.Item{item(t, "keep"), item(t, "gpu stuff")},
	}

	Annotate(result, 2, []string{"GPU"})

	if result.Page != 2 || result.TotalPages != 3 {
		t.Errorf("unexpected pagination page=%d total_pages=%d", result.Page, result.TotalPages)
	}
	if result.FilteredCount == nil || *result.FilteredCount != 1 {
		t.Errorf("expected filtered_count 1, got %v", result.FilteredCount)
	}
	if len(result.Items) != 1 {
		t.Errorf("expected 1 item left, got %d", len(result.Items))
	}

	unfiltered := &model.SearchResult{TotalCount: 1, Items: []model.Item{item(t, "gpu")}}
	Annotate(unfiltered, 1, nil)
	if unfiltered.FilteredCount != nil {
		t.Error("expected filtered_count to be absent without a blacklist")
	}
	if len(unfiltered.Items) != 1 {
		t.Error("expected items untouched without a blacklist")
	}
}
