package http

import (
	configdomain "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/domain"
)

type numberedStory struct {
	Index int
	Text  string
}

// pageData backs index.tmpl. It is filled from stage events so a failed
// run still shows every panel produced before the failure.
type pageData struct {
	Requirements string
	Roles        []configdomain.RoleConfig
	Submitted    bool

	ClarifiedDone bool
	Clarified     string
	StoriesDone   bool
	Stories       []numberedStory
	Snippets      []domain.Generation
	FinalDone     bool
	FinalCode     string
	Error         string
}

// OnStage records the output of each finished stage.
func (p *pageData) OnStage(event domain.StageEvent) {
	switch event.Stage {
	case domain.StageClarifying:
		p.ClarifiedDone = true
		p.Clarified = event.Output
	case domain.StageParsing:
		p.StoriesDone = true
		for i, story := range event.Stories {
			p.Stories = append(p.Stories, numberedStory{Index: i + 1, Text: story})
		}
	case domain.StageGeneratingCode:
		p.Snippets = append(p.Snippets, domain.Generation{Index: event.Index, Story: event.Story, Code: event.Output})
	case domain.StageAggregating:
		p.FinalDone = true
		p.FinalCode = event.Output
	}
}
