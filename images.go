package layoutplan

// Image positions. None of these is ever adjacent to a heading: an image
// after the heading and before the first paragraph breaks the reading flow,
// and every decision path below resolves somewhere else. This is the single
// most important correctness property of the image subsystem.
const (
	ImageAfterIntroParagraph = "after-intro-paragraph"
	ImageSectionEnd          = "section-end"
	ImageFloatLeft           = "float-left"
	ImageFloatRight          = "float-right"
	ImageFullWidthBreak      = "full-width-break"
	ImageInline              = "inline"
	ImageNone                = "none"
)

// Image sources.
const (
	SourceGenerated   = "generated-for-article"
	SourceBrandAsset  = "brand-asset"
	SourcePlaceholder = "placeholder"
)

// Semantic image roles.
const (
	RoleHero        = "hero"
	RoleExplanatory = "explanatory"
	RoleEvidence    = "evidence"
	RoleDecorative  = "decorative"
)

// PlaceholderSpec describes a suggested (never injected) placeholder image.
type PlaceholderSpec struct {
	AspectRatio string `json:"aspectRatio"`           // e.g. "16:9"
	ContentHint string `json:"contentHint,omitempty"` // what the image should show
	AltTemplate string `json:"altTemplate,omitempty"`
}

// ImagePlacement is the image decision for one section.
type ImagePlacement struct {
	Position     string           `json:"position"`
	Source       string           `json:"source,omitempty"`
	SemanticRole string           `json:"semanticRole,omitempty"`
	Placeholder  *PlaceholderSpec `json:"placeholder,omitempty"`
	Reasoning    string           `json:"reasoning,omitempty"`
}

// Present reports whether the placement actually places or suggests an image.
func (p ImagePlacement) Present() bool {
	return p.Position != ImageNone && p.Position != ""
}

// placeholderDenied lists content types that never receive placeholder
// suggestions: their components carry their own visual structure.
var placeholderDenied = map[ContentType]bool{
	ContentFAQ:         true,
	ContentDefinition:  true,
	ContentTestimonial: true,
}

// ImageHandler decides image placement for sections in document order.
// Implementations may carry per-batch state (float alternation), so callers
// must call Reset before each batch and feed sections strictly in order.
type ImageHandler interface {
	Reset()
	Place(analysis SectionAnalysis, brand *BrandProfile) ImagePlacement
}

// FlowImageHandler places images with a single piece of mutable state: the
// direction of the next floated image, flipped on every float placement so
// asymmetric layouts alternate left and right down the page.
type FlowImageHandler struct {
	nextFloat string
}

// NewFlowImageHandler creates a FlowImageHandler starting with a left float.
func NewFlowImageHandler() *FlowImageHandler {
	return &FlowImageHandler{nextFloat: ImageFloatLeft}
}

// SeedFloat sets the starting float direction for the next batch.
// Unknown values are ignored.
func (h *FlowImageHandler) SeedFloat(direction string) {
	if direction == ImageFloatLeft || direction == ImageFloatRight {
		h.nextFloat = direction
	}
}

// Reset rewinds the float alternation to its starting direction.
func (h *FlowImageHandler) Reset() {
	h.nextFloat = ImageFloatLeft
}

// Place resolves the image decision for one section. First match wins:
// an existing image is positioned, then a required-but-missing image is
// slotted, then a placeholder may be suggested. Every path lands on a
// position that is not heading-adjacent.
func (h *FlowImageHandler) Place(analysis SectionAnalysis, brand *BrandProfile) ImagePlacement {
	// 1. The section already carries a generated image.
	if analysis.Flags.HasImage {
		return h.placeExisting(analysis, brand)
	}

	// 2. An image is required but missing.
	if analysis.Constraints.ImageRequired {
		return h.placeRequired(analysis, brand)
	}

	// 3. A placeholder may be suggested for visually complex content.
	return suggestPlaceholder(analysis)
}

// placeExisting positions an image the section already has. Hero-weight
// sections on full-bleed brands get a full-width break; featured sections
// break the column too; everything else sits after the intro paragraph,
// never against the heading.
func (h *FlowImageHandler) placeExisting(analysis SectionAnalysis, brand *BrandProfile) ImagePlacement {
	switch {
	case analysis.SemanticWeight >= MaxSemanticWeight && brand.Heroes == HeroesFullBleed:
		return ImagePlacement{
			Position:     ImageFullWidthBreak,
			Source:       SourceGenerated,
			SemanticRole: RoleHero,
			Reasoning:    "hero section on a full-bleed brand",
		}
	case analysis.SemanticWeight >= 4:
		return ImagePlacement{
			Position:     ImageFullWidthBreak,
			Source:       SourceGenerated,
			SemanticRole: RoleExplanatory,
			Reasoning:    "featured section, image breaks the column",
		}
	default:
		return ImagePlacement{
			Position:     ImageAfterIntroParagraph,
			Source:       SourceGenerated,
			SemanticRole: RoleExplanatory,
			Reasoning:    "image follows the first paragraph",
		}
	}
}

// placeRequired slots a required image that is not in the content yet.
// Asymmetric brands alternate floats; the alternation state flips on use.
func (h *FlowImageHandler) placeRequired(analysis SectionAnalysis, brand *BrandProfile) ImagePlacement {
	if analysis.SemanticWeight >= 4 {
		return ImagePlacement{
			Position:     ImageFullWidthBreak,
			Source:       SourceGenerated,
			SemanticRole: RoleEvidence,
			Reasoning:    "required image for a featured section",
		}
	}

	if brand.Layout == LayoutAsymmetric {
		position := h.nextFloat
		h.nextFloat = oppositeFloat(position)
		return ImagePlacement{
			Position:     position,
			Source:       SourceGenerated,
			SemanticRole: RoleEvidence,
			Reasoning:    "alternating float on an asymmetric layout",
		}
	}

	return ImagePlacement{
		Position:     ImageSectionEnd,
		Source:       SourceGenerated,
		SemanticRole: RoleEvidence,
		Reasoning:    "required image closes the section",
	}
}

// suggestPlaceholder proposes (never injects) a placeholder for content that
// benefits from a diagram. Protected sections and deny-listed content types
// never receive a suggestion.
func suggestPlaceholder(analysis SectionAnalysis) ImagePlacement {
	if analysis.Constraints.Protected() || placeholderDenied[analysis.ContentType] {
		return ImagePlacement{Position: ImageNone}
	}

	switch analysis.ContentType {
	case ContentSteps, ContentProcess:
		return ImagePlacement{
			Position:     ImageSectionEnd,
			Source:       SourcePlaceholder,
			SemanticRole: RoleExplanatory,
			Placeholder: &PlaceholderSpec{
				AspectRatio: "16:9",
				ContentHint: "flowchart of the steps described in this section",
				AltTemplate: "Flowchart: {heading}",
			},
			Reasoning: "step content benefits from a flowchart",
		}
	case ContentExplanation:
		// Explanation classification already required a complex-concept
		// match in the body, so the diagram suggestion follows directly.
		return ImagePlacement{
			Position:     ImageSectionEnd,
			Source:       SourcePlaceholder,
			SemanticRole: RoleExplanatory,
			Placeholder: &PlaceholderSpec{
				AspectRatio: "4:3",
				ContentHint: "diagram of the concept explained in this section",
				AltTemplate: "Diagram: {heading}",
			},
			Reasoning: "complex concept benefits from a diagram",
		}
	}

	return ImagePlacement{Position: ImageNone}
}

// oppositeFloat flips the float direction.
func oppositeFloat(direction string) string {
	if direction == ImageFloatLeft {
		return ImageFloatRight
	}
	return ImageFloatLeft
}
