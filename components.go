package layoutplan

import (
	"fmt"
	"strings"
)

// Component names a presentational component the renderer knows how to build.
type Component string

// The closed component catalog.
const (
	ComponentHeroBanner     Component = "hero-banner"
	ComponentLeadParagraph  Component = "lead-paragraph"
	ComponentProseBlock     Component = "prose-block"
	ComponentStepList       Component = "step-list"
	ComponentTimeline       Component = "timeline"
	ComponentNumberedList   Component = "numbered-list"
	ComponentChecklist      Component = "checklist"
	ComponentFAQAccordion   Component = "faq-accordion"
	ComponentFAQCards       Component = "faq-cards"
	ComponentComparisonTbl  Component = "comparison-table"
	ComponentDataTable      Component = "data-table"
	ComponentStatHighlight  Component = "stat-highlight"
	ComponentBulletList     Component = "bullet-list"
	ComponentIconList       Component = "icon-list"
	ComponentCardGrid       Component = "card-grid"
	ComponentFeatureGrid    Component = "feature-grid"
	ComponentDefinitionBox  Component = "definition-box"
	ComponentBlockquote     Component = "blockquote"
	ComponentTestimonial    Component = "testimonial-card"
	ComponentCTABanner      Component = "cta-banner"
	ComponentCTAInline      Component = "cta-inline"
	ComponentImageGallery   Component = "image-gallery"
	ComponentTOC            Component = "table-of-contents"
	ComponentRelatedLinks   Component = "related-links"
	ComponentProcessDiagram Component = "process-diagram"
	ComponentInfoCallout    Component = "info-callout"
	ComponentCodeBlock      Component = "code-block"
)

// knownComponents indexes the catalog for validation.
var knownComponents = map[Component]bool{
	ComponentHeroBanner: true, ComponentLeadParagraph: true, ComponentProseBlock: true,
	ComponentStepList: true, ComponentTimeline: true, ComponentNumberedList: true,
	ComponentChecklist: true, ComponentFAQAccordion: true, ComponentFAQCards: true,
	ComponentComparisonTbl: true, ComponentDataTable: true, ComponentStatHighlight: true,
	ComponentBulletList: true, ComponentIconList: true, ComponentCardGrid: true,
	ComponentFeatureGrid: true, ComponentDefinitionBox: true, ComponentBlockquote: true,
	ComponentTestimonial: true, ComponentCTABanner: true, ComponentCTAInline: true,
	ComponentImageGallery: true, ComponentTOC: true, ComponentRelatedLinks: true,
	ComponentProcessDiagram: true, ComponentInfoCallout: true, ComponentCodeBlock: true,
}

// isKnownComponent checks membership in the component catalog.
func isKnownComponent(c Component) bool {
	return knownComponents[c]
}

// fsCompliantComponents is the subset allowed for featured-snippet targets.
// These render to plain paragraph, list, and table structures whose HTML a
// search engine can lift verbatim.
var fsCompliantComponents = map[Component]bool{
	ComponentProseBlock:    true,
	ComponentLeadParagraph: true,
	ComponentBulletList:    true,
	ComponentNumberedList:  true,
	ComponentStepList:      true,
	ComponentDataTable:     true,
	ComponentDefinitionBox: true,
	ComponentFAQAccordion:  true,
}

// IsFSCompliant reports whether c may render a featured-snippet target.
func IsFSCompliant(c Component) bool {
	return fsCompliantComponents[c]
}

// componentCandidates maps each content type to its ranked candidate set.
// The first entry is the neutral default; brand personality reorders it.
var componentCandidates = map[ContentType][]Component{
	ContentProse:        {ComponentProseBlock, ComponentInfoCallout},
	ContentIntroduction: {ComponentLeadParagraph, ComponentHeroBanner, ComponentProseBlock},
	ContentSteps:        {ComponentStepList, ComponentTimeline, ComponentNumberedList},
	ContentProcess:      {ComponentProcessDiagram, ComponentTimeline, ComponentStepList},
	ContentFAQ:          {ComponentFAQAccordion, ComponentFAQCards},
	ContentComparison:   {ComponentComparisonTbl, ComponentCardGrid, ComponentDataTable},
	ContentData:         {ComponentDataTable, ComponentStatHighlight},
	ContentList:         {ComponentBulletList, ComponentIconList, ComponentCardGrid, ComponentChecklist},
	ContentDefinition:   {ComponentDefinitionBox, ComponentInfoCallout, ComponentProseBlock},
	ContentTestimonial:  {ComponentTestimonial, ComponentBlockquote},
	ContentExplanation:  {ComponentProseBlock, ComponentInfoCallout, ComponentFeatureGrid},
	ContentCTA:          {ComponentCTABanner, ComponentCTAInline},
	ContentBridge:       {ComponentRelatedLinks, ComponentCardGrid},
	ContentSidebar:      {ComponentInfoCallout, ComponentBulletList},
	ContentRelated:      {ComponentRelatedLinks, ComponentCardGrid},
	ContentTOC:          {ComponentTOC},
	ContentCode:         {ComponentCodeBlock, ComponentProseBlock},
}

// personalityPreferred nudges specific content types toward components that
// fit the brand personality. Only applied when the component is a candidate.
var personalityPreferred = map[string]map[ContentType]Component{
	PersonalityPlayful: {
		ContentFAQ:   ComponentFAQCards,
		ContentList:  ComponentIconList,
		ContentSteps: ComponentTimeline,
	},
	PersonalityBold: {
		ContentIntroduction: ComponentHeroBanner,
		ContentSteps:        ComponentTimeline,
		ContentComparison:   ComponentCardGrid,
	},
	PersonalityMinimal: {
		ContentSteps: ComponentNumberedList,
		ContentList:  ComponentBulletList,
	},
	PersonalityElegant: {
		ContentTestimonial: ComponentBlockquote,
	},
}

// ComponentSelection is the selector's verdict: a primary component, ranked
// alternatives, and free-text reasoning for the audit trail.
type ComponentSelection struct {
	PrimaryComponent      Component   `json:"primaryComponent"`
	AlternativeComponents []Component `json:"alternativeComponents,omitempty"`
	ComponentVariant      string      `json:"componentVariant,omitempty"`
	Confidence            float64     `json:"confidence"`
	Reasoning             string      `json:"reasoning"`
}

// ComponentSelector picks a presentational component for one section.
type ComponentSelector interface {
	Select(analysis SectionAnalysis, brand *BrandProfile) ComponentSelection
}

// CatalogSelector selects components from the fixed candidate catalog,
// honoring featured-snippet protection before any brand preference.
type CatalogSelector struct{}

// NewCatalogSelector creates a CatalogSelector.
func NewCatalogSelector() *CatalogSelector {
	return &CatalogSelector{}
}

// Select resolves the primary component and ranked alternatives. The brand
// profile must already be normalized by the caller.
func (s *CatalogSelector) Select(analysis SectionAnalysis, brand *BrandProfile) ComponentSelection {
	candidates := candidatesFor(analysis)

	// Protection restricts the candidate set before any other logic runs.
	if analysis.Constraints.FeaturedSnippet {
		candidates = filterFSCompliant(candidates)
	}

	primary, why := pickPrimary(candidates, analysis, brand)
	alternatives := withoutComponent(candidates, primary)

	confidence := 0.7
	if analysis.Constraints.FeaturedSnippet {
		confidence = 0.9
	}

	return ComponentSelection{
		PrimaryComponent:      primary,
		AlternativeComponents: alternatives,
		ComponentVariant:      variantFor(analysis, brand),
		Confidence:            confidence,
		Reasoning:             why,
	}
}

// candidatesFor returns the ranked candidates for the analysis, seeding
// hero-banner for hero-weight centerpiece content.
func candidatesFor(analysis SectionAnalysis) []Component {
	if c, ok := componentCandidates[analysis.ContentType]; ok {
		out := make([]Component, len(c))
		copy(out, c)
		return out
	}
	return []Component{ComponentProseBlock, ComponentInfoCallout}
}

// filterFSCompliant keeps only FS-compliant candidates, falling back to
// prose-block when nothing survives the filter.
func filterFSCompliant(candidates []Component) []Component {
	kept := candidates[:0:0]
	for _, c := range candidates {
		if IsFSCompliant(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return []Component{ComponentProseBlock}
	}
	return kept
}

// pickPrimary chooses the primary candidate: brand component preference
// first, then personality nudge, then the ranked default.
func pickPrimary(candidates []Component, analysis SectionAnalysis, brand *BrandProfile) (Component, string) {
	if preferred := brand.preferredComponent(analysis.ContentType); preferred != "" && containsComponent(candidates, preferred) {
		return preferred, fmt.Sprintf("%s content, brand prefers %s", analysis.ContentType, preferred)
	}
	if nudges, ok := personalityPreferred[brand.Personality]; ok {
		if nudged, ok := nudges[analysis.ContentType]; ok && containsComponent(candidates, nudged) {
			return nudged, fmt.Sprintf("%s content styled for a %s brand as %s", analysis.ContentType, brand.Personality, nudged)
		}
	}
	primary := candidates[0]
	return primary, fmt.Sprintf("%s content renders as %s", analysis.ContentType, primary)
}

// variantFor derives a component variant from zone and emphasis signals.
func variantFor(analysis SectionAnalysis, brand *BrandProfile) string {
	switch {
	case analysis.SemanticWeight >= MaxSemanticWeight:
		return "prominent"
	case analysis.Zone == ZoneSupplementary:
		return "compact"
	case brand.Density == DensitySpacious:
		return "airy"
	default:
		return ""
	}
}

// containsComponent reports whether want is among the candidates.
func containsComponent(candidates []Component, want Component) bool {
	for _, c := range candidates {
		if c == want {
			return true
		}
	}
	return false
}

// withoutComponent returns candidates minus the chosen primary.
func withoutComponent(candidates []Component, primary Component) []Component {
	out := make([]Component, 0, len(candidates))
	for _, c := range candidates {
		if c != primary {
			out = append(out, c)
		}
	}
	return out
}

// varietyState is the one piece of deliberate cross-section state: it tracks
// the previously selected primary component and how many times in a row the
// same choice recurred. The orchestrator owns exactly one varietyState per
// blueprint generation; it is never shared.
type varietyState struct {
	lastPrimary Component
	repeats     int
}

// varietyRepeatThreshold is the consecutive-repeat count at which the
// orchestrator starts substituting alternatives.
const varietyRepeatThreshold = 2

// apply threads the selection through the variety mechanism, substituting an
// alternative once the same primary has repeated enough to look monotonous.
// Featured-snippet targets are exempt: protection beats variety.
func (v *varietyState) apply(selection ComponentSelection, protected bool) ComponentSelection {
	chosen := selection.PrimaryComponent
	if chosen == v.lastPrimary {
		v.repeats++
	} else {
		v.repeats = 0
	}
	v.lastPrimary = chosen

	if protected || v.repeats < varietyRepeatThreshold || len(selection.AlternativeComponents) == 0 {
		return selection
	}

	substitute := selection.AlternativeComponents[(v.repeats-varietyRepeatThreshold)%len(selection.AlternativeComponents)]
	selection.AlternativeComponents = withoutComponent(append(selection.AlternativeComponents, chosen), substitute)
	selection.PrimaryComponent = substitute
	selection.Reasoning = strings.TrimSpace(selection.Reasoning) +
		fmt.Sprintf("; varied to %s after %d consecutive %s sections", substitute, v.repeats+1, chosen)
	return selection
}
