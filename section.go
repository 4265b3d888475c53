package layoutplan

// Heading level bounds. Level 0 means the section has no heading of its own;
// level 1 is the document title; 2-6 are subheadings.
const (
	MinHeadingLevel = 0
	MaxHeadingLevel = 6
)

// Format hint codes supplied by an upstream content brief.
// Unknown codes are ignored, never rejected.
const (
	FormatIntroduction    = "introduction"
	FormatFeaturedSnippet = "featured-snippet"
	FormatFAQ             = "faq"
	FormatHowTo           = "how-to"
	FormatComparison      = "comparison"
	FormatData            = "data"
	FormatDefinition      = "definition"
	FormatTestimonial     = "testimonial"
	FormatCTA             = "cta"
	FormatBridge          = "bridge"
	FormatVisual          = "visual"
	FormatCode            = "code"
)

// Attribute categories, ordered from most to least distinctive.
// They bias semantic weight: unique > root > rare > common.
const (
	AttributeUnique = "unique"
	AttributeRoot   = "root"
	AttributeRare   = "rare"
	AttributeCommon = "common"
)

// Section is one ordered unit of the input document: a heading plus the body
// blocks beneath it. Sections are immutable inputs, created once per document
// by an upstream collaborator (or internal/sectionize) and never mutated.
type Section struct {
	Heading      string        `json:"heading"`
	HeadingLevel int           `json:"headingLevel"` // 0 = none, 1 = title, 2-6 = subheading
	Body         string        `json:"body"`
	Position     int           `json:"position"` // ordinal position in the document
	Hints        *SectionHints `json:"hints,omitempty"`
}

// SectionHints carries optional, externally supplied classification hints.
// All fields are optional; empty values mean "no hint".
type SectionHints struct {
	Format            string      `json:"format,omitempty"`            // format code, e.g. "faq", "featured-snippet"
	AttributeCategory string      `json:"attributeCategory,omitempty"` // "unique", "root", "rare", "common"
	Zone              ContentZone `json:"zone,omitempty"`              // pre-assigned content zone
}

// DocumentHints carries optional per-document signals used only to bias
// semantic-weight scoring.
type DocumentHints struct {
	TopicTitle   string `json:"topicTitle,omitempty"`
	PillarTopic  bool   `json:"pillarTopic,omitempty"` // topic is a "core" pillar topic
	SearchIntent string `json:"searchIntent,omitempty"`
}

// HasHeading reports whether the section carries its own heading.
func (s Section) HasHeading() bool {
	return s.HeadingLevel > 0 && s.Heading != ""
}

// hintFormat returns the format hint code, or "" when absent.
func (s Section) hintFormat() string {
	if s.Hints == nil {
		return ""
	}
	return s.Hints.Format
}

// hintCategory returns the attribute category hint, or "" when absent.
func (s Section) hintCategory() string {
	if s.Hints == nil {
		return ""
	}
	return s.Hints.AttributeCategory
}

// hintZone returns the pre-assigned zone hint, or "" when absent.
func (s Section) hintZone() ContentZone {
	if s.Hints == nil {
		return ""
	}
	return s.Hints.Zone
}
