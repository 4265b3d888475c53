package layoutplan

import "strings"

// ContentZone names one of the eight coarse page regions a section can
// occupy, independent of its visual styling.
type ContentZone string

// The eight content zones. Every section is assigned exactly one.
const (
	ZoneTitle         ContentZone = "title"
	ZoneCenterpiece   ContentZone = "centerpiece"
	ZoneTrust         ContentZone = "trust"
	ZoneCTA           ContentZone = "cta"
	ZoneBridge        ContentZone = "bridge"
	ZoneSupplementary ContentZone = "supplementary"
	ZoneBoilerplate   ContentZone = "boilerplate"
	ZoneMain          ContentZone = "main"
)

// isValidZone checks if z is one of the eight defined zones.
func isValidZone(z ContentZone) bool {
	switch z {
	case ZoneTitle, ZoneCenterpiece, ZoneTrust, ZoneCTA,
		ZoneBridge, ZoneSupplementary, ZoneBoilerplate, ZoneMain:
		return true
	}
	return false
}

// ZoneAssignment records the zone decision for one section. Confidence is
// informational only: ties between rules are broken by cascade order, never
// by comparing confidences.
type ZoneAssignment struct {
	SectionIndex int         `json:"sectionIndex"`
	Zone         ContentZone `json:"zone"`
	Confidence   float64     `json:"confidence"`
}

// Heading patterns for the trust, CTA, and bridge cascades. Matched
// case-insensitively against the whole heading.
var (
	trustHeadingWords = []string{
		"about", "credentials", "testimonial", "team",
		"expertise", "awards", "partners", "why trust",
	}
	ctaHeadingWords = []string{
		"get started", "contact", "sign up", "book", "request",
		"try it", "subscribe", "start your",
	}
	bridgeHeadingWords = []string{
		"related", "discover", "learn more", "next steps", "how we help",
		"how it helps", "see also",
	}
)

// ZoneAssigner maps analyzed sections to content zones.
type ZoneAssigner interface {
	Assign(section Section, analysis SectionAnalysis, index, total int) ZoneAssignment
}

// CascadeZoneAssigner assigns zones through a fixed priority cascade,
// first match wins. It is stateless: every call is independent.
type CascadeZoneAssigner struct{}

// NewCascadeZoneAssigner creates a CascadeZoneAssigner.
func NewCascadeZoneAssigner() *CascadeZoneAssigner {
	return &CascadeZoneAssigner{}
}

// Assign resolves exactly one zone for the section. A pre-assigned zone hint
// short-circuits the cascade when it names a valid zone.
func (a *CascadeZoneAssigner) Assign(section Section, analysis SectionAnalysis, index, total int) ZoneAssignment {
	zone, confidence := a.assignZone(section, analysis, index, total)
	return ZoneAssignment{
		SectionIndex: index,
		Zone:         zone,
		Confidence:   confidence,
	}
}

// assignZone runs the priority cascade. Each rule returns on first match so
// the precedence order stays auditable.
func (a *CascadeZoneAssigner) assignZone(section Section, analysis SectionAnalysis, index, total int) (ContentZone, float64) {
	if hinted := section.hintZone(); isValidZone(hinted) {
		return hinted, 1.0
	}

	heading := strings.ToLower(section.Heading)

	// 1. Document title.
	if section.HeadingLevel == 1 {
		return ZoneTitle, 0.95
	}

	// 2. Opening content.
	if analysis.ContentType == ContentIntroduction {
		return ZoneCenterpiece, 0.9
	}
	if index <= 1 && section.HasHeading() {
		return ZoneCenterpiece, 0.7
	}

	// 3. Trust signals.
	if matchesAny(heading, trustHeadingWords) || analysis.ContentType == ContentTestimonial {
		return ZoneTrust, 0.85
	}

	// 4. Calls to action.
	if matchesAny(heading, ctaHeadingWords) || analysis.ContentType == ContentCTA {
		return ZoneCTA, 0.9
	}

	// 5. Bridges to related content.
	if matchesAny(heading, bridgeHeadingWords) || analysis.ContentType == ContentBridge {
		return ZoneBridge, 0.8
	}

	// 6. Supplementary material.
	switch analysis.ContentType {
	case ContentSidebar, ContentRelated, ContentTOC:
		return ZoneSupplementary, 0.85
	}
	if section.HeadingLevel >= 3 && analysis.SemanticWeight <= 2 {
		return ZoneSupplementary, 0.6
	}

	// 7. Trailing boilerplate. A single-section document stays MAIN: a
	// document collapsed to one section is the main content, not a footer.
	if total > 1 {
		if !section.HasHeading() {
			return ZoneBoilerplate, 0.7
		}
		if index == total-1 {
			return ZoneBoilerplate, 0.5
		}
	}

	// 8. Default.
	return ZoneMain, 0.6
}

// matchesAny reports whether s contains any of the given words.
func matchesAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
