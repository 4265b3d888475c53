package layoutplan

import (
	"regexp"
	"strings"
)

// ContentType classifies what kind of content a section carries.
type ContentType string

// The closed set of content types the analyzer can produce.
const (
	ContentProse        ContentType = "prose"
	ContentIntroduction ContentType = "introduction"
	ContentSteps        ContentType = "steps"
	ContentProcess      ContentType = "process"
	ContentFAQ          ContentType = "faq"
	ContentComparison   ContentType = "comparison"
	ContentData         ContentType = "data"
	ContentList         ContentType = "list"
	ContentDefinition   ContentType = "definition"
	ContentTestimonial  ContentType = "testimonial"
	ContentExplanation  ContentType = "explanation"
	ContentCTA          ContentType = "cta"
	ContentBridge       ContentType = "bridge"
	ContentSidebar      ContentType = "sidebar"
	ContentRelated      ContentType = "related"
	ContentTOC          ContentType = "table-of-contents"
	ContentCode         ContentType = "code"
)

// Semantic weight bounds. Weight 5 makes a section hero-eligible.
const (
	MinSemanticWeight     = 1
	MaxSemanticWeight     = 5
	DefaultSemanticWeight = 3
)

// Constraints are hard requirements derived from hints and classification.
// They bind the downstream deciders regardless of brand preferences.
type Constraints struct {
	FeaturedSnippet bool `json:"featuredSnippet"` // forces 1-column + restricted components
	PeopleAlsoAsk   bool `json:"peopleAlsoAsk"`   // question-phrased, FAQ-surface target
	ImageRequired   bool `json:"imageRequired"`
	RequiresVisual  bool `json:"requiresVisual"`
}

// Protected reports whether the section is a protection target that layout
// decisions must not disturb.
func (c Constraints) Protected() bool {
	return c.FeaturedSnippet || c.PeopleAlsoAsk
}

// ContentFlags record structural facts detected in the body.
type ContentFlags struct {
	HasTable bool `json:"hasTable"`
	HasList  bool `json:"hasList"`
	HasImage bool `json:"hasImage"`
}

// SectionAnalysis is the analyzer's verdict for one section. Computed once,
// read by every downstream decider, never mutated after the zone is filled in
// by the orchestrator.
type SectionAnalysis struct {
	SectionID      int          `json:"sectionId"`
	Heading        string       `json:"heading"`
	HeadingLevel   int          `json:"headingLevel"`
	ContentType    ContentType  `json:"contentType"`
	SemanticWeight int          `json:"semanticWeight"` // 1-5
	Zone           ContentZone  `json:"zone"`
	Constraints    Constraints  `json:"constraints"`
	Flags          ContentFlags `json:"flags"`
}

// Precompiled patterns for structure and classification heuristics.
var (
	numberedLine   = regexp.MustCompile(`(?m)^\s*\d+[.)]\s`)
	bulletLine     = regexp.MustCompile(`(?m)^\s*[-*+]\s`)
	tableRow       = regexp.MustCompile(`(?m)^\s*\|.+\|\s*$`)
	imageMarker    = regexp.MustCompile(`!\[[^\]]*\]\(`)
	fencedCode     = regexp.MustCompile("(?m)^(```|~~~)")
	questionLine   = regexp.MustCompile(`(?m)\?\s*$`)
	questionOpener = regexp.MustCompile(`(?i)^(how|what|why|when|where|which|who|can|does|do|is|are|should)\b`)

	comparisonWords = regexp.MustCompile(`(?i)\b(vs\.?|versus|compared (to|with)|pros and cons|difference between|better than)\b`)
	processWords    = regexp.MustCompile(`(?i)\b(process|workflow|lifecycle|pipeline|phases?|stages?)\b`)
	definitionLead  = regexp.MustCompile(`(?i)^(what (is|are)\b|definition of\b)`)
	faqHeading      = regexp.MustCompile(`(?i)\b(faq|faqs|frequently asked)\b`)
	tocHeading      = regexp.MustCompile(`(?i)^(table of )?contents$`)
	relatedHeading  = regexp.MustCompile(`(?i)\b(related|further reading|see also)\b`)
	introHeading    = regexp.MustCompile(`(?i)\b(introduction|overview|getting to know)\b`)

	// Bodies that describe structural relationships benefit from a diagram.
	complexConcept = regexp.MustCompile(`(?i)\b(relationship|architecture|workflow|lifecycle|process|hierarchy|dependency|interaction|data flow)\b`)

	wordSplitter = regexp.MustCompile(`[^a-z0-9]+`)
)

// Format hint to content type mapping. Featured-snippet and visual hints set
// constraints instead of a type, so they are absent here.
var contentTypeByFormat = map[string]ContentType{
	FormatIntroduction: ContentIntroduction,
	FormatFAQ:          ContentFAQ,
	FormatHowTo:        ContentSteps,
	FormatComparison:   ContentComparison,
	FormatData:         ContentData,
	FormatDefinition:   ContentDefinition,
	FormatTestimonial:  ContentTestimonial,
	FormatCTA:          ContentCTA,
	FormatBridge:       ContentBridge,
	FormatCode:         ContentCode,
}

// SectionAnalyzer classifies raw sections into analyses, preserving order.
type SectionAnalyzer interface {
	Analyze(sections []Section, hints *DocumentHints) []SectionAnalysis
}

// HeuristicAnalyzer classifies sections by combining explicit hints with
// regex/structure inspection. Unclassifiable content never errors: it falls
// back to prose, weight 3, no constraints.
type HeuristicAnalyzer struct{}

// NewHeuristicAnalyzer creates a HeuristicAnalyzer.
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

// Analyze produces one SectionAnalysis per input section, in input order.
func (a *HeuristicAnalyzer) Analyze(sections []Section, hints *DocumentHints) []SectionAnalysis {
	analyses := make([]SectionAnalysis, 0, len(sections))
	titleIndex := findTitleIndex(sections)
	for i, section := range sections {
		analyses = append(analyses, a.analyzeSection(section, i, titleIndex, hints))
	}
	return analyses
}

// analyzeSection classifies one section and scores its semantic weight.
func (a *HeuristicAnalyzer) analyzeSection(section Section, index, titleIndex int, hints *DocumentHints) SectionAnalysis {
	flags := detectFlags(section.Body)
	contentType := classifyContent(section, flags)
	weight := scoreWeight(section, contentType, index, titleIndex, hints)

	constraints := Constraints{
		FeaturedSnippet: section.hintFormat() == FormatFeaturedSnippet,
		PeopleAlsoAsk:   isQuestionHeading(section.Heading),
	}
	constraints.ImageRequired = section.hintFormat() == FormatVisual ||
		contentType == ContentComparison || contentType == ContentData
	constraints.RequiresVisual = constraints.ImageRequired ||
		contentType == ContentSteps || contentType == ContentProcess

	return SectionAnalysis{
		SectionID:      section.Position,
		Heading:        section.Heading,
		HeadingLevel:   section.HeadingLevel,
		ContentType:    contentType,
		SemanticWeight: weight,
		Constraints:    constraints,
		Flags:          flags,
	}
}

// detectFlags inspects the raw body for structural markers.
func detectFlags(body string) ContentFlags {
	return ContentFlags{
		HasTable: tableRow.MatchString(body),
		HasList:  bulletLine.MatchString(body) || numberedLine.MatchString(body),
		HasImage: imageMarker.MatchString(body),
	}
}

// classifyContent resolves the content type: explicit hint first, then
// heuristic inspection, first match wins, prose as the terminal fallback.
func classifyContent(section Section, flags ContentFlags) ContentType {
	if ct, ok := contentTypeByFormat[section.hintFormat()]; ok {
		return ct
	}

	heading := section.Heading
	body := section.Body

	switch {
	case tocHeading.MatchString(strings.TrimSpace(heading)):
		return ContentTOC
	case relatedHeading.MatchString(heading):
		return ContentRelated
	case introHeading.MatchString(heading):
		return ContentIntroduction
	case definitionLead.MatchString(strings.TrimSpace(heading)):
		return ContentDefinition
	case faqHeading.MatchString(heading):
		return ContentFAQ
	case countMatches(questionLine, body) >= 2:
		return ContentFAQ
	case comparisonWords.MatchString(heading) || comparisonWords.MatchString(body):
		return ContentComparison
	case flags.HasTable:
		return ContentData
	case countMatches(numberedLine, body) >= 2 && processWords.MatchString(heading):
		return ContentProcess
	case countMatches(numberedLine, body) >= 2:
		return ContentSteps
	case fencedCode.MatchString(body):
		return ContentCode
	case countMatches(bulletLine, body) >= 3:
		return ContentList
	case complexConcept.MatchString(body) && len(body) > 200:
		return ContentExplanation
	default:
		return ContentProse
	}
}

// scoreWeight synthesizes the semantic weight from the attribute category
// hint, document position, and search-intent overlap, clamped to [1,5].
func scoreWeight(section Section, contentType ContentType, index, titleIndex int, hints *DocumentHints) int {
	if section.HeadingLevel == 1 {
		return MaxSemanticWeight
	}

	weight := DefaultSemanticWeight

	switch section.hintCategory() {
	case AttributeUnique:
		weight += 2
	case AttributeRoot:
		weight++
	case AttributeRare:
		// stays at base
	case AttributeCommon:
		weight--
	}

	// First substantive section after the title carries the lede.
	if titleIndex >= 0 && index == titleIndex+1 {
		weight++
	}

	if hints != nil {
		if keywordOverlap(section.Heading, hints.SearchIntent) {
			weight++
		}
		if hints.PillarTopic && keywordOverlap(section.Heading, hints.TopicTitle) {
			weight++
		}
	}

	return clampWeight(weight)
}

// clampWeight bounds a weight to [MinSemanticWeight, MaxSemanticWeight].
func clampWeight(w int) int {
	if w < MinSemanticWeight {
		return MinSemanticWeight
	}
	if w > MaxSemanticWeight {
		return MaxSemanticWeight
	}
	return w
}

// findTitleIndex returns the index of the level-1 heading, or -1 when the
// document has no title.
func findTitleIndex(sections []Section) int {
	for i, s := range sections {
		if s.HeadingLevel == 1 {
			return i
		}
	}
	return -1
}

// isQuestionHeading reports whether a heading is phrased as a question,
// either punctuated or opening with a question word.
func isQuestionHeading(heading string) bool {
	h := strings.TrimSpace(heading)
	if h == "" {
		return false
	}
	return strings.HasSuffix(h, "?") || questionOpener.MatchString(h)
}

// keywordOverlap reports whether heading and phrase share at least one
// significant keyword (4+ characters).
func keywordOverlap(heading, phrase string) bool {
	if heading == "" || phrase == "" {
		return false
	}
	headingWords := significantWords(heading)
	for w := range significantWords(phrase) {
		if headingWords[w] {
			return true
		}
	}
	return false
}

// significantWords lowercases and tokenizes s, keeping words of 4+ chars.
func significantWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range wordSplitter.Split(strings.ToLower(s), -1) {
		if len(w) >= 4 {
			words[w] = true
		}
	}
	return words
}

// countMatches returns the number of non-overlapping matches of re in s.
func countMatches(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}
