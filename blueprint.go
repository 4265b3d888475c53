package layoutplan

import (
	"fmt"
	"time"
)

// BlueprintSection aggregates every per-section decision for the renderer.
// The orchestrator creates one per input section; immutable thereafter.
type BlueprintSection struct {
	Analysis  SectionAnalysis    `json:"analysis"`
	Zone      ZoneAssignment     `json:"zone"`
	Layout    LayoutParameters   `json:"layout"`
	Component ComponentSelection `json:"component"`
	Emphasis  VisualEmphasis     `json:"emphasis"`
	Image     ImagePlacement     `json:"image"`
	Tags      []string           `json:"tags"` // css-class-like labels for the renderer
}

// LayoutSuggestion proposes a layout change for a section run. The
// orchestrator consumes suggestions; the renderer never sees them directly.
type LayoutSuggestion struct {
	Type         string  `json:"type"`
	SectionIndex int     `json:"sectionIndex"` // where the change applies
	Confidence   float64 `json:"confidence"`
	Description  string  `json:"description"`
}

// Suggestion types.
const (
	SuggestionSoftBreak  = "soft-break"
	SuggestionWidthShift = "width-shift"
)

// autoApplyConfidence is the threshold above which suggestions are applied
// to the blueprint instead of merely recorded.
const autoApplyConfidence = 0.8

// Reasoning is the human-readable audit trail of one generation.
type Reasoning struct {
	Strategy           string   `json:"strategy"`
	KeyDecisions       []string `json:"keyDecisions"`
	SuggestionsApplied []string `json:"suggestionsApplied"`
	SuggestionsSkipped []string `json:"suggestionsSkipped"`
}

// Validation is the non-fatal result check: violations become issue strings,
// never errors, and the blueprint is returned regardless.
type Validation struct {
	ProtectionMaintained bool     `json:"protectionMaintained"`
	SemanticSeoCompliant bool     `json:"semanticSeoCompliant"`
	BrandAlignmentScore  int      `json:"brandAlignmentScore"` // 0-100
	Issues               []string `json:"issues"`
}

// LayoutBlueprint is the sole artifact of one generation: everything a
// rendering collaborator needs to turn the document into markup.
type LayoutBlueprint struct {
	ID           string             `json:"id"`
	GeneratedAt  time.Time          `json:"generatedAt"`
	PageSettings PageSettings       `json:"pageSettings"`
	Sections     []BlueprintSection `json:"sections"`
	Reasoning    Reasoning          `json:"reasoning"`
	Validation   Validation         `json:"validation"`
}

// AlignmentScorer estimates how well the generated layout agrees with the
// brand profile, 0-100. The default implementation is a fixed stub; callers
// with real scoring semantics inject their own via WithScorer.
type AlignmentScorer interface {
	Score(sections []BlueprintSection, brand *BrandProfile) int
}

// fixedAlignmentScore is what the stub scorer reports for any non-empty
// document. An empty document scores a perfect 100.
const fixedAlignmentScore = 85

// StubScorer reports a fixed alignment score. It exists so the scoring
// interface is pluggable without inventing scoring semantics.
type StubScorer struct{}

// Score returns 100 for empty documents and the fixed stub score otherwise.
func (StubScorer) Score(sections []BlueprintSection, brand *BrandProfile) int {
	if len(sections) == 0 {
		return 100
	}
	return fixedAlignmentScore
}

// buildTags flattens the section's decisions into css-class-like labels.
func buildTags(section BlueprintSection) []string {
	tags := []string{
		"zone-" + string(section.Zone.Zone),
		"content-" + string(section.Analysis.ContentType),
		"emphasis-" + section.Emphasis.Level,
		"layout-" + section.Layout.Columns,
		"width-" + section.Layout.Width,
		"component-" + string(section.Component.PrimaryComponent),
		fmt.Sprintf("weight-%d", section.Analysis.SemanticWeight),
	}
	if section.Analysis.Constraints.FeaturedSnippet {
		tags = append(tags, "fs-protected")
	}
	if section.Analysis.Constraints.PeopleAlsoAsk {
		tags = append(tags, "paa-target")
	}
	if section.Image.Present() {
		tags = append(tags, "img-"+section.Image.Position)
	}
	if section.Emphasis.HasEntryAnimation {
		tags = append(tags, "animate-"+section.Emphasis.AnimationType)
	}
	return tags
}
