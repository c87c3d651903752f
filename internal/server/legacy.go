package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naiba/issue-tabs/internal/model"
)

const legacyRepo = "llvm/llvm-project"

// legacyTabs back the fixed endpoints that predate configurable tabs. They
// never apply a blacklist.
var legacyTabs = map[string]model.Tab{
	"amd-issues": {
		ID: "amd-issues", Label: "AMDGPU Issues", Repo: legacyRepo,
		Type: model.TabTypeIssues, Keywords: []string{"AMDGPU", "AMDGCN"},
	},
	"amd-prs": {
		ID: "amd-prs", Label: "AMDGPU PRs", Repo: legacyRepo,
		Type: model.TabTypePRs, Keywords: []string{"AMDGPU", "AMDGCN"},
	},
	"spirv-issues": {
		ID: "spirv-issues", Label: "SPIR-V Issues", Repo: legacyRepo,
		Type: model.TabTypeIssues, Keywords: []string{"SPIR-V", "SPIRV"},
	},
	"spirv-prs": {
		ID: "spirv-prs", Label: "SPIR-V PRs", Repo: legacyRepo,
		Type: model.TabTypePRs, Keywords: []string{"SPIR-V", "SPIRV"},
	},
}

func (s *Server) getLegacy(tab model.Tab) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := s.fetch(tab, pageParam(c), nil)
		if err != nil {
			return s.upstreamFailure(tab.Label, err)
		}
		return c.JSON(result)
	}
}
