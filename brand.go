package layoutplan

import (
	"fmt"
	"strings"
)

// Brand personality constants.
const (
	PersonalityMinimal   = "minimal"
	PersonalityBold      = "bold"
	PersonalityPlayful   = "playful"
	PersonalityCorporate = "corporate"
	PersonalityElegant   = "elegant"
)

// Brand motion settings. Static brands never receive entry animations.
const (
	MotionStatic  = "static"
	MotionSubtle  = "subtle"
	MotionDynamic = "dynamic"
)

// Brand layout grid styles.
const (
	LayoutClassic    = "classic"
	LayoutGrid       = "grid"
	LayoutAsymmetric = "asymmetric"
)

// Brand spacing densities.
const (
	DensityCompact     = "compact"
	DensityComfortable = "comfortable"
	DensitySpacious    = "spacious"
)

// Brand content widths.
const (
	WidthNarrow = "narrow"
	WidthMedium = "medium"
	WidthWide   = "wide"
	WidthFull   = "full"
)

// Brand hero treatments.
const (
	HeroesContained = "contained"
	HeroesFullBleed = "full-bleed"
)

// Color modes.
const (
	ColorModeLight = "light"
	ColorModeDark  = "dark"
)

// BrandProfile captures the style identity extracted from a brand: how dense,
// how wide, how animated, and which presentational components it prefers.
// The whole profile is optional; a nil profile falls back to defaults
// everywhere (see DefaultBrandProfile).
type BrandProfile struct {
	Name         string            `yaml:"name" json:"name,omitempty"`
	Personality  string            `yaml:"personality" json:"personality,omitempty"`
	Motion       string            `yaml:"motion" json:"motion,omitempty"`
	Layout       string            `yaml:"layout" json:"layout,omitempty"`
	Density      string            `yaml:"density" json:"density,omitempty"`
	ContentWidth string            `yaml:"contentWidth" json:"contentWidth,omitempty"`
	Heroes       string            `yaml:"heroes" json:"heroes,omitempty"`
	ColorMode    string            `yaml:"colorMode" json:"colorMode,omitempty"`
	Colors       BrandColors       `yaml:"colors" json:"colors,omitempty"`
	Typography   BrandTypography   `yaml:"typography" json:"typography,omitempty"`
	Shape        BrandShape        `yaml:"shape" json:"shape,omitempty"`
	Components   map[string]string `yaml:"components" json:"components,omitempty"` // content type -> preferred component
}

// BrandColors holds the brand color palette.
type BrandColors struct {
	Primary string `yaml:"primary" json:"primary,omitempty"`
	Accent  string `yaml:"accent" json:"accent,omitempty"`
	Surface string `yaml:"surface" json:"surface,omitempty"`
}

// BrandTypography holds the brand type settings.
type BrandTypography struct {
	HeadingFont string `yaml:"headingFont" json:"headingFont,omitempty"`
	BodyFont    string `yaml:"bodyFont" json:"bodyFont,omitempty"`
	BaseSize    string `yaml:"baseSize" json:"baseSize,omitempty"`
}

// BrandShape holds the brand shape language.
type BrandShape struct {
	Radius string `yaml:"radius" json:"radius,omitempty"` // e.g. "8px"
}

// DefaultBrandProfile returns the documented fallback profile used whenever
// no brand profile is supplied: comfortable density, medium width, subtle
// motion, classic layout.
func DefaultBrandProfile() *BrandProfile {
	return &BrandProfile{
		Personality:  PersonalityMinimal,
		Motion:       MotionSubtle,
		Layout:       LayoutClassic,
		Density:      DensityComfortable,
		ContentWidth: WidthMedium,
		Heroes:       HeroesContained,
		ColorMode:    ColorModeLight,
	}
}

// Validate checks that all set enum fields carry known values.
// Returns nil if b is nil (nil means use defaults). Empty fields are valid
// and fall back to defaults. Comparison is case-insensitive.
func (b *BrandProfile) Validate() error {
	if b == nil {
		return nil
	}
	checks := []struct {
		value string
		valid func(string) bool
		err   error
	}{
		{b.Personality, isValidPersonality, ErrInvalidPersonality},
		{b.Motion, isValidMotion, ErrInvalidMotion},
		{b.Layout, isValidLayoutStyle, ErrInvalidLayoutStyle},
		{b.Density, isValidDensity, ErrInvalidDensity},
		{b.ContentWidth, isValidContentWidth, ErrInvalidContentWidth},
		{b.Heroes, isValidHeroStyle, ErrInvalidHeroStyle},
		{b.ColorMode, isValidColorMode, ErrInvalidColorMode},
	}
	for _, c := range checks {
		if c.value != "" && !c.valid(c.value) {
			return fmt.Errorf("%w: %q", c.err, c.value)
		}
	}
	for contentType, component := range b.Components {
		if !isKnownComponent(Component(component)) {
			return fmt.Errorf("%w: %q (for content type %q)", ErrUnknownComponent, component, contentType)
		}
	}
	return nil
}

// normalized returns a profile with every empty or unknown enum field
// replaced by its default, so the deciders never branch on raw input.
// A nil receiver normalizes to the full default profile.
func (b *BrandProfile) normalized() *BrandProfile {
	def := DefaultBrandProfile()
	if b == nil {
		return def
	}
	n := *b
	n.Personality = normalizeEnum(n.Personality, isValidPersonality, def.Personality)
	n.Motion = normalizeEnum(n.Motion, isValidMotion, def.Motion)
	n.Layout = normalizeEnum(n.Layout, isValidLayoutStyle, def.Layout)
	n.Density = normalizeEnum(n.Density, isValidDensity, def.Density)
	n.ContentWidth = normalizeEnum(n.ContentWidth, isValidContentWidth, def.ContentWidth)
	n.Heroes = normalizeEnum(n.Heroes, isValidHeroStyle, def.Heroes)
	n.ColorMode = normalizeEnum(n.ColorMode, isValidColorMode, def.ColorMode)
	return &n
}

// normalizeEnum lowercases value and falls back to def when it is empty or
// not recognized by valid.
func normalizeEnum(value string, valid func(string) bool, def string) string {
	v := strings.ToLower(value)
	if v == "" || !valid(v) {
		return def
	}
	return v
}

func isValidPersonality(s string) bool {
	switch strings.ToLower(s) {
	case PersonalityMinimal, PersonalityBold, PersonalityPlayful, PersonalityCorporate, PersonalityElegant:
		return true
	}
	return false
}

func isValidMotion(s string) bool {
	switch strings.ToLower(s) {
	case MotionStatic, MotionSubtle, MotionDynamic:
		return true
	}
	return false
}

func isValidLayoutStyle(s string) bool {
	switch strings.ToLower(s) {
	case LayoutClassic, LayoutGrid, LayoutAsymmetric:
		return true
	}
	return false
}

func isValidDensity(s string) bool {
	switch strings.ToLower(s) {
	case DensityCompact, DensityComfortable, DensitySpacious:
		return true
	}
	return false
}

func isValidContentWidth(s string) bool {
	switch strings.ToLower(s) {
	case WidthNarrow, WidthMedium, WidthWide, WidthFull:
		return true
	}
	return false
}

func isValidHeroStyle(s string) bool {
	switch strings.ToLower(s) {
	case HeroesContained, HeroesFullBleed:
		return true
	}
	return false
}

func isValidColorMode(s string) bool {
	switch strings.ToLower(s) {
	case ColorModeLight, ColorModeDark:
		return true
	}
	return false
}

// preferredComponent returns the brand's preferred component for a content
// type, or "" when the brand states no preference.
func (b *BrandProfile) preferredComponent(ct ContentType) Component {
	if b == nil || b.Components == nil {
		return ""
	}
	return Component(b.Components[string(ct)])
}

// Page-level setting lookup tables. Keys are normalized brand values, so
// every lookup hits.
var (
	maxWidthByContentWidth = map[string]string{
		WidthNarrow: "768px",
		WidthMedium: "1024px",
		WidthWide:   "1280px",
		WidthFull:   "1536px",
	}
	baseSpacingByDensity = map[string]string{
		DensityCompact:     "16px",
		DensityComfortable: "24px",
		DensitySpacious:    "32px",
	}
)

// PageSettings holds page-level layout values derived from the brand profile.
type PageSettings struct {
	MaxWidth    string `json:"maxWidth"`
	BaseSpacing string `json:"baseSpacing"`
	ColorMode   string `json:"colorMode"`
}

// derivePageSettings maps a normalized brand profile to page-level settings
// via fixed lookup tables.
func derivePageSettings(brand *BrandProfile) PageSettings {
	return PageSettings{
		MaxWidth:    maxWidthByContentWidth[brand.ContentWidth],
		BaseSpacing: baseSpacingByDensity[brand.Density],
		ColorMode:   brand.ColorMode,
	}
}
