package layoutplan

import (
	"fmt"
	"hash/fnv"
	"time"
)

// Engine orchestrates the layout pipeline: analyze every section, fold the
// per-section deciders across the document in order, apply global
// suggestions, validate, and assemble the blueprint.
type Engine struct {
	analyzer   SectionAnalyzer
	zoner      ZoneAssigner
	planner    LayoutPlanner
	selector   ComponentSelector
	emphasizer VisualEmphasizer
	images     ImageHandler
	scorer     AlignmentScorer
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithAnalyzer replaces the section analyzer.
func WithAnalyzer(a SectionAnalyzer) Option {
	return func(e *Engine) { e.analyzer = a }
}

// WithZoneAssigner replaces the zone assigner.
func WithZoneAssigner(z ZoneAssigner) Option {
	return func(e *Engine) { e.zoner = z }
}

// WithPlanner replaces the layout planner.
func WithPlanner(p LayoutPlanner) Option {
	return func(e *Engine) { e.planner = p }
}

// WithSelector replaces the component selector.
func WithSelector(s ComponentSelector) Option {
	return func(e *Engine) { e.selector = s }
}

// WithEmphasizer replaces the visual emphasizer.
func WithEmphasizer(v VisualEmphasizer) Option {
	return func(e *Engine) { e.emphasizer = v }
}

// WithImageHandler replaces the image handler.
func WithImageHandler(h ImageHandler) Option {
	return func(e *Engine) { e.images = h }
}

// WithScorer replaces the stub brand-alignment scorer.
func WithScorer(s AlignmentScorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithClock replaces the timestamp source. Tests pin it to make blueprints
// byte-identical across runs; everything else in the pipeline is already
// deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine with the default deciders. Use options to
// substitute any of them (e.g., fakes in tests, a real alignment scorer).
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		analyzer:   NewHeuristicAnalyzer(),
		zoner:      NewCascadeZoneAssigner(),
		planner:    NewWeightedPlanner(),
		selector:   NewCatalogSelector(),
		emphasizer: NewWeightEmphasizer(),
		images:     NewFlowImageHandler(),
		scorer:     StubScorer{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate runs the full pipeline and returns the blueprint. It never fails:
// every edge case resolves to a documented fallback, and correctness
// violations become recorded validation issues rather than errors. A nil
// brand profile falls back to DefaultBrandProfile.
//
// Sections are processed strictly in document order: the component-variety
// counter and the image float alternation are folded left to right, so this
// is a stateful fold, not a parallel map. The fold state lives only for the
// duration of this call.
func (e *Engine) Generate(sections []Section, brand *BrandProfile, hints *DocumentHints) *LayoutBlueprint {
	profile := brand.normalized()

	blueprint := &LayoutBlueprint{
		ID:           blueprintID(sections, profile),
		GeneratedAt:  e.now().UTC(),
		PageSettings: derivePageSettings(profile),
		Sections:     []BlueprintSection{},
	}

	// Empty input is a defined terminal case, not an error.
	if len(sections) == 0 {
		blueprint.Validation = Validation{
			ProtectionMaintained: true,
			SemanticSeoCompliant: true,
			BrandAlignmentScore:  e.scorer.Score(nil, profile),
			Issues:               []string{},
		}
		blueprint.Reasoning = Reasoning{
			Strategy:           "empty document, nothing to lay out",
			KeyDecisions:       []string{},
			SuggestionsApplied: []string{},
			SuggestionsSkipped: []string{},
		}
		return blueprint
	}

	// Stage 1: analyze all sections, then assign zones.
	analyses := e.analyzer.Analyze(sections, hints)
	zones := make([]ZoneAssignment, len(analyses))
	for i := range analyses {
		zones[i] = e.zoner.Assign(sections[i], analyses[i], i, len(analyses))
		analyses[i].Zone = zones[i].Zone
	}

	// Stage 2: ordered fold over the per-section deciders. The variety and
	// float state are owned here and discarded when the call returns.
	variety := &varietyState{}
	e.images.Reset()

	built := make([]BlueprintSection, 0, len(analyses))
	decisions := []string{}
	for i, analysis := range analyses {
		selection := e.selector.Select(analysis, profile)
		selection = variety.apply(selection, analysis.Constraints.FeaturedSnippet)

		section := BlueprintSection{
			Analysis:  analysis,
			Zone:      zones[i],
			Layout:    e.planner.Plan(analysis, profile),
			Component: selection,
			Emphasis:  e.emphasizer.Emphasize(analysis, profile),
			Image:     e.images.Place(analysis, profile),
		}
		section.Tags = buildTags(section)
		built = append(built, section)

		decisions = append(decisions, sectionDecisions(i, section)...)
	}

	// Stage 3: global suggestions; confident ones are applied in place.
	applied, skipped := e.applySuggestions(built)

	// Stage 4: validation. Violations become issues, never errors.
	blueprint.Validation = e.validate(built, profile)

	// Stage 5: reasoning block.
	blueprint.Reasoning = Reasoning{
		Strategy:           strategySummary(built, profile),
		KeyDecisions:       decisions,
		SuggestionsApplied: applied,
		SuggestionsSkipped: skipped,
	}

	blueprint.Sections = built
	return blueprint
}

// applySuggestions generates global suggestions and applies the confident
// ones, mutating only the BreakAfter field of already-built layouts.
func (e *Engine) applySuggestions(sections []BlueprintSection) (applied, skipped []string) {
	applied = []string{}
	skipped = []string{}
	for _, suggestion := range generateSuggestions(sections) {
		if suggestion.Confidence >= autoApplyConfidence && suggestion.Type == SuggestionSoftBreak {
			sections[suggestion.SectionIndex].Layout.BreakAfter = BreakSoft
			applied = append(applied, suggestion.Description)
			continue
		}
		skipped = append(skipped, suggestion.Description)
	}
	return applied, skipped
}

// generateSuggestions scans the built sections for visual monotony. A run of
// three or more consecutive text-heavy sections (no table, list, or image,
// none protected) earns a confident soft-break proposal after the run; a
// page dominated by single-column medium sections earns a low-confidence
// width-shift proposal that is recorded but not applied.
func generateSuggestions(sections []BlueprintSection) []LayoutSuggestion {
	var suggestions []LayoutSuggestion

	runStart := -1
	runLength := 0
	flush := func(end int) {
		if runLength >= 3 {
			suggestions = append(suggestions, LayoutSuggestion{
				Type:         SuggestionSoftBreak,
				SectionIndex: end - 1,
				Confidence:   0.85,
				Description: fmt.Sprintf("soft visual break after sections %d-%d (%d text-heavy sections in a row)",
					runStart, end-1, runLength),
			})
		}
		runStart, runLength = -1, 0
	}

	for i, s := range sections {
		if isTextHeavy(s) {
			if runStart < 0 {
				runStart = i
			}
			runLength++
			continue
		}
		flush(i)
	}
	flush(len(sections))

	if monotone := countMonotoneWidth(sections); len(sections) >= 5 && monotone*10 >= len(sections)*6 {
		suggestions = append(suggestions, LayoutSuggestion{
			Type:         SuggestionWidthShift,
			SectionIndex: 0,
			Confidence:   0.6,
			Description:  fmt.Sprintf("%d of %d sections share the same single-column medium width; consider varying widths", monotone, len(sections)),
		})
	}

	return suggestions
}

// isTextHeavy reports whether the section is an unbroken block of text that
// the breathing-room scan counts toward a run.
func isTextHeavy(s BlueprintSection) bool {
	flags := s.Analysis.Flags
	return !flags.HasTable && !flags.HasList && !flags.HasImage && !s.Analysis.Constraints.Protected()
}

// countMonotoneWidth counts single-column medium-width sections.
func countMonotoneWidth(sections []BlueprintSection) int {
	n := 0
	for _, s := range sections {
		if s.Layout.Columns == Columns1 && s.Layout.Width == SectionMedium {
			n++
		}
	}
	return n
}

// validate checks the invariants the renderer depends on. Violations are
// recorded as issues; the blueprint is still returned so rendering can
// proceed in degraded form.
func (e *Engine) validate(sections []BlueprintSection, brand *BrandProfile) Validation {
	issues := []string{}

	protection := true
	for i, s := range sections {
		if !s.Analysis.Constraints.FeaturedSnippet {
			continue
		}
		if s.Layout.Columns != Columns1 {
			protection = false
			issues = append(issues, fmt.Sprintf("section %d: featured-snippet target laid out as %s, must be %s", i, s.Layout.Columns, Columns1))
		}
		if !IsFSCompliant(s.Component.PrimaryComponent) {
			protection = false
			issues = append(issues, fmt.Sprintf("section %d: featured-snippet target uses non-compliant component %s", i, s.Component.PrimaryComponent))
		}
	}

	// Image placements must never sit between a heading and its first
	// paragraph. The handler guarantees this; the check is the safety net.
	imagesSafe := true
	for i, s := range sections {
		switch s.Image.Position {
		case ImageAfterIntroParagraph, ImageSectionEnd, ImageFloatLeft,
			ImageFloatRight, ImageFullWidthBreak, ImageInline, ImageNone, "":
			// allowed
		default:
			imagesSafe = false
			issues = append(issues, fmt.Sprintf("section %d: image position %q is not an allowed placement", i, s.Image.Position))
		}
	}

	titles := 0
	for _, s := range sections {
		if s.Zone.Zone == ZoneTitle {
			titles++
		}
	}
	if titles > 1 {
		issues = append(issues, fmt.Sprintf("%d sections assigned to the title zone, expected at most one", titles))
	}

	score := e.scorer.Score(sections, brand)
	if score < 60 {
		issues = append(issues, fmt.Sprintf("brand alignment score %d is below the acceptable floor of 60", score))
	}

	return Validation{
		ProtectionMaintained: protection,
		SemanticSeoCompliant: protection && imagesSafe && titles <= 1,
		BrandAlignmentScore:  score,
		Issues:               issues,
	}
}

// strategySummary writes the one-paragraph natural-language summary of the
// generation for the audit trail.
func strategySummary(sections []BlueprintSection, brand *BrandProfile) string {
	heroes, protected, main, supplementary := 0, 0, 0, 0
	for _, s := range sections {
		if s.Emphasis.Level == EmphasisHero {
			heroes++
		}
		if s.Analysis.Constraints.FeaturedSnippet {
			protected++
		}
		switch s.Zone.Zone {
		case ZoneMain:
			main++
		case ZoneSupplementary:
			supplementary++
		}
	}
	return fmt.Sprintf(
		"laid out %d sections for a %s brand (%s motion, %s layout): %d hero, %d featured-snippet protected, %d main vs %d supplementary",
		len(sections), brand.Personality, brand.Motion, brand.Layout,
		heroes, protected, main, supplementary,
	)
}

// sectionDecisions records the notable per-section decisions for the
// reasoning block.
func sectionDecisions(index int, s BlueprintSection) []string {
	var out []string
	if s.Analysis.Constraints.FeaturedSnippet {
		out = append(out, fmt.Sprintf("section %d: featured-snippet protection enforced (%s, %s)", index, s.Layout.Columns, s.Component.PrimaryComponent))
	}
	if s.Emphasis.Level == EmphasisHero {
		out = append(out, fmt.Sprintf("section %d: hero emphasis (%q)", index, s.Analysis.Heading))
	}
	if s.Image.Source == SourcePlaceholder {
		out = append(out, fmt.Sprintf("section %d: %s placeholder suggested", index, s.Image.SemanticRole))
	}
	return out
}

// blueprintID derives a stable identifier from the inputs so identical
// inputs always label their blueprints identically.
func blueprintID(sections []Section, brand *BrandProfile) string {
	h := fnv.New64a()
	for _, s := range sections {
		fmt.Fprintf(h, "%d|%d|%s|%s|", s.Position, s.HeadingLevel, s.Heading, s.Body)
		if s.Hints != nil {
			fmt.Fprintf(h, "%s|%s|%s|", s.Hints.Format, s.Hints.AttributeCategory, s.Hints.Zone)
		}
	}
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s",
		brand.Personality, brand.Motion, brand.Layout,
		brand.Density, brand.ContentWidth, brand.Heroes)
	return fmt.Sprintf("bp-%016x", h.Sum64())
}
