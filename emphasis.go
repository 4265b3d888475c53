package layoutplan

// Emphasis levels, strongest first.
const (
	EmphasisHero       = "hero"
	EmphasisFeatured   = "featured"
	EmphasisStandard   = "standard"
	EmphasisSupporting = "supporting"
	EmphasisMinimal    = "minimal"
)

// Heading size tokens per emphasis level.
const (
	HeadingSizeHero       = "3rem"
	HeadingSizeFeatured   = "2.25rem"
	HeadingSizeStandard   = "1.875rem"
	HeadingSizeSupporting = "1.5rem"
	HeadingSizeMinimal    = "1.25rem"
)

// Background treatments.
const (
	BackgroundGradient = "gradient"
	BackgroundTint     = "tint"
)

// Accent border positions.
const (
	AccentLeft = "left"
	AccentTop  = "top"
)

// Entry animation types.
const (
	AnimationFadeUp  = "fade-up"
	AnimationFadeIn  = "fade-in"
	AnimationSlideIn = "slide-in"
)

// VisualEmphasis describes how strongly a section is presented: heading
// scale, padding, elevation, and decorative treatment. Derived purely from
// the analysis and brand profile; the emphasizer holds no state.
type VisualEmphasis struct {
	Level                  string  `json:"level"`
	HeadingSize            string  `json:"headingSize"`
	PaddingMultiplier      float64 `json:"paddingMultiplier"` // >= 1
	Elevation              int     `json:"elevation"`         // >= 0
	HasBackgroundTreatment bool    `json:"hasBackgroundTreatment"`
	BackgroundType         string  `json:"backgroundType,omitempty"`
	HasAccentBorder        bool    `json:"hasAccentBorder"`
	AccentPosition         string  `json:"accentPosition,omitempty"`
	HasEntryAnimation      bool    `json:"hasEntryAnimation"`
	AnimationType          string  `json:"animationType,omitempty"`
}

// VisualEmphasizer derives emphasis for one section.
type VisualEmphasizer interface {
	Emphasize(analysis SectionAnalysis, brand *BrandProfile) VisualEmphasis
}

// WeightEmphasizer maps semantic weight and zone to an emphasis level, then
// applies brand personality and motion settings to the decoration.
type WeightEmphasizer struct{}

// NewWeightEmphasizer creates a WeightEmphasizer.
func NewWeightEmphasizer() *WeightEmphasizer {
	return &WeightEmphasizer{}
}

// Emphasize derives the visual emphasis. The brand profile must already be
// normalized by the caller.
//
// Entry animation is a hard gate, not a probability: it is set only when the
// brand motion is not static AND the section weight is at least 4.
func (e *WeightEmphasizer) Emphasize(analysis SectionAnalysis, brand *BrandProfile) VisualEmphasis {
	emphasis := baseEmphasis(analysis)

	if emphasis.Level == EmphasisHero || emphasis.Level == EmphasisFeatured {
		decorate(&emphasis, brand)
	}

	if brand.Motion != MotionStatic && analysis.SemanticWeight >= 4 {
		emphasis.HasEntryAnimation = true
		emphasis.AnimationType = animationForMotion(brand.Motion, emphasis.Level)
	}

	return emphasis
}

// baseEmphasis resolves the emphasis level from weight and zone.
func baseEmphasis(analysis SectionAnalysis) VisualEmphasis {
	switch {
	case analysis.SemanticWeight >= MaxSemanticWeight:
		return VisualEmphasis{
			Level:             EmphasisHero,
			HeadingSize:       HeadingSizeHero,
			PaddingMultiplier: 2.0,
		}
	case analysis.SemanticWeight >= 4:
		return VisualEmphasis{
			Level:             EmphasisFeatured,
			HeadingSize:       HeadingSizeFeatured,
			PaddingMultiplier: 1.5,
			Elevation:         1,
		}
	case analysis.SemanticWeight <= 2 && analysis.Zone == ZoneSupplementary:
		return VisualEmphasis{
			Level:             EmphasisMinimal,
			HeadingSize:       HeadingSizeMinimal,
			PaddingMultiplier: 1.0,
		}
	case analysis.SemanticWeight <= 2:
		return VisualEmphasis{
			Level:             EmphasisSupporting,
			HeadingSize:       HeadingSizeSupporting,
			PaddingMultiplier: 1.0,
		}
	default:
		return VisualEmphasis{
			Level:             EmphasisStandard,
			HeadingSize:       HeadingSizeStandard,
			PaddingMultiplier: 1.0,
		}
	}
}

// decorate applies background and accent treatments for prominent sections
// based on brand personality and palette.
func decorate(emphasis *VisualEmphasis, brand *BrandProfile) {
	switch brand.Personality {
	case PersonalityBold:
		emphasis.HasBackgroundTreatment = true
		emphasis.BackgroundType = BackgroundGradient
		if emphasis.Level == EmphasisFeatured {
			emphasis.Elevation = 2
		}
	case PersonalityPlayful:
		emphasis.HasBackgroundTreatment = true
		emphasis.BackgroundType = BackgroundTint
	}

	if brand.Colors.Accent != "" && emphasis.Level == EmphasisFeatured {
		emphasis.HasAccentBorder = true
		emphasis.AccentPosition = AccentLeft
	}
}

// animationForMotion picks the animation type: dynamic brands slide heroes
// in, everything else fades.
func animationForMotion(motion, level string) string {
	if motion == MotionDynamic {
		if level == EmphasisHero {
			return AnimationSlideIn
		}
		return AnimationFadeUp
	}
	return AnimationFadeIn
}
