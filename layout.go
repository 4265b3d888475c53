package layoutplan

// Column counts.
const (
	Columns1 = "1-column"
	Columns2 = "2-column"
	Columns3 = "3-column"
)

// Section widths, relative to the page max width.
const (
	SectionNarrow = "narrow"
	SectionMedium = "medium"
	SectionWide   = "wide"
	SectionFull   = "full"
)

// Text alignment.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
)

// Vertical spacing scale.
const (
	SpacingCompact  = "compact"
	SpacingNormal   = "normal"
	SpacingSpacious = "spacious"
)

// Break markers after a section.
const (
	BreakNone = "none"
	BreakSoft = "soft"
	BreakHard = "hard"
)

// LayoutParameters describe how one section occupies the page.
// If the section is a featured-snippet target, Columns is always 1-column.
type LayoutParameters struct {
	Columns       string `json:"columns"`
	Width         string `json:"width"`
	AlignText     string `json:"alignText"`
	SpacingBefore string `json:"spacingBefore"`
	SpacingAfter  string `json:"spacingAfter"`
	BreakAfter    string `json:"breakAfter"`
}

// LayoutPlanner derives layout parameters for one section.
type LayoutPlanner interface {
	Plan(analysis SectionAnalysis, brand *BrandProfile) LayoutParameters
}

// WeightedPlanner scales columns and width with semantic weight and content
// type. It is referentially transparent: same inputs, same output, which the
// test fixtures depend on.
type WeightedPlanner struct{}

// NewWeightedPlanner creates a WeightedPlanner.
func NewWeightedPlanner() *WeightedPlanner {
	return &WeightedPlanner{}
}

// Plan derives the layout for one analyzed section. The brand profile must
// already be normalized by the caller.
func (p *WeightedPlanner) Plan(analysis SectionAnalysis, brand *BrandProfile) LayoutParameters {
	params := LayoutParameters{
		Columns:       planColumns(analysis, brand),
		Width:         planWidth(analysis),
		AlignText:     planAlignment(analysis),
		SpacingBefore: spacingForWeight(analysis.SemanticWeight),
		SpacingAfter:  spacingForWeight(analysis.SemanticWeight),
		BreakAfter:    BreakNone,
	}

	// Featured-snippet protection wins over every other column signal.
	// Validation re-checks this as a safety net.
	if analysis.Constraints.FeaturedSnippet {
		params.Columns = Columns1
	}

	return params
}

// planColumns resolves the column count. Multi-column is reserved for
// mid-weight list and feature content on grid-favoring brands.
func planColumns(analysis SectionAnalysis, brand *BrandProfile) string {
	if analysis.Constraints.FeaturedSnippet {
		return Columns1
	}

	gridBrand := brand.Layout == LayoutGrid || brand.Layout == LayoutAsymmetric
	midWeight := analysis.SemanticWeight >= 2 && analysis.SemanticWeight <= 4

	switch analysis.ContentType {
	case ContentComparison, ContentData:
		// Tabular content spans a single wide column.
		return Columns1
	case ContentList, ContentRelated, ContentBridge:
		if gridBrand && midWeight {
			if analysis.SemanticWeight == 3 && brand.Layout == LayoutGrid {
				return Columns3
			}
			return Columns2
		}
	case ContentFAQ:
		if gridBrand && analysis.SemanticWeight <= 3 {
			return Columns2
		}
	}
	return Columns1
}

// planWidth scales width with weight; tabular content widens regardless.
func planWidth(analysis SectionAnalysis) string {
	switch analysis.ContentType {
	case ContentComparison, ContentData:
		return SectionWide
	}
	switch {
	case analysis.SemanticWeight >= MaxSemanticWeight:
		return SectionFull
	case analysis.SemanticWeight >= 4:
		return SectionWide
	case analysis.SemanticWeight <= 2 && analysis.Zone == ZoneSupplementary:
		return SectionNarrow
	default:
		return SectionMedium
	}
}

// planAlignment centers hero and CTA content, everything else reads
// left-aligned.
func planAlignment(analysis SectionAnalysis) string {
	if analysis.Zone == ZoneTitle || analysis.Zone == ZoneCTA {
		return AlignCenter
	}
	if analysis.SemanticWeight >= MaxSemanticWeight && analysis.Zone == ZoneCenterpiece {
		return AlignCenter
	}
	return AlignLeft
}

// spacingForWeight maps semantic weight to the vertical spacing scale.
func spacingForWeight(weight int) string {
	switch {
	case weight >= 4:
		return SpacingSpacious
	case weight <= 2:
		return SpacingCompact
	default:
		return SpacingNormal
	}
}
