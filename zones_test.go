package layoutplan

// Notes:
// - Cascade precedence: title > centerpiece > trust > cta > bridge >
//   supplementary > boilerplate > main
// - Zone hints short-circuit the cascade; invalid hints are ignored
// - Single-section documents stay MAIN, never boilerplate

import "testing"

func TestCascadeZoneAssigner_Assign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		section        Section
		analysis       SectionAnalysis
		index          int
		total          int
		wantZone       ContentZone
		wantConfidence float64
	}{
		{
			name:           "level-1 heading is the title",
			section:        Section{Heading: "Fern Handbook", HeadingLevel: 1},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 5},
			index:          0,
			total:          6,
			wantZone:       ZoneTitle,
			wantConfidence: 0.95,
		},
		{
			name:           "introduction content is the centerpiece",
			section:        Section{Heading: "Overview", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentIntroduction, SemanticWeight: 4},
			index:          2,
			total:          6,
			wantZone:       ZoneCenterpiece,
			wantConfidence: 0.9,
		},
		{
			name:           "early headed section is the centerpiece at lower confidence",
			section:        Section{Heading: "The Basics", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          1,
			total:          6,
			wantZone:       ZoneCenterpiece,
			wantConfidence: 0.7,
		},
		{
			name:           "about heading lands in trust",
			section:        Section{Heading: "About Our Team", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          3,
			total:          6,
			wantZone:       ZoneTrust,
			wantConfidence: 0.85,
		},
		{
			name:           "testimonial content lands in trust",
			section:        Section{Heading: "Kind Words", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentTestimonial, SemanticWeight: 3},
			index:          3,
			total:          6,
			wantZone:       ZoneTrust,
			wantConfidence: 0.85,
		},
		{
			name:           "get started heading lands in cta",
			section:        Section{Heading: "Get Started Today", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          3,
			total:          6,
			wantZone:       ZoneCTA,
			wantConfidence: 0.9,
		},
		{
			name:           "related heading lands in bridge before supplementary",
			section:        Section{Heading: "Related Guides", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          3,
			total:          6,
			wantZone:       ZoneBridge,
			wantConfidence: 0.8,
		},
		{
			name:           "toc content is supplementary",
			section:        Section{Heading: "Contents", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentTOC, SemanticWeight: 2},
			index:          2,
			total:          6,
			wantZone:       ZoneSupplementary,
			wantConfidence: 0.85,
		},
		{
			name:           "deep light heading is supplementary",
			section:        Section{Heading: "Edge Cases", HeadingLevel: 4},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 2},
			index:          3,
			total:          6,
			wantZone:       ZoneSupplementary,
			wantConfidence: 0.6,
		},
		{
			name:           "headingless middle section is boilerplate",
			section:        Section{Body: "Footer text."},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          3,
			total:          6,
			wantZone:       ZoneBoilerplate,
			wantConfidence: 0.7,
		},
		{
			name:           "final section is boilerplate",
			section:        Section{Heading: "Closing Notes", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          5,
			total:          6,
			wantZone:       ZoneBoilerplate,
			wantConfidence: 0.5,
		},
		{
			name:           "single-section document stays main",
			section:        Section{Body: "The whole document."},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          0,
			total:          1,
			wantZone:       ZoneMain,
			wantConfidence: 0.6,
		},
		{
			name:           "everything else is main",
			section:        Section{Heading: "Soil Preparation", HeadingLevel: 2},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          3,
			total:          6,
			wantZone:       ZoneMain,
			wantConfidence: 0.6,
		},
		{
			name:           "valid zone hint short-circuits",
			section:        Section{Heading: "Soil", HeadingLevel: 2, Hints: &SectionHints{Zone: ZoneTrust}},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          3,
			total:          6,
			wantZone:       ZoneTrust,
			wantConfidence: 1.0,
		},
		{
			name:           "invalid zone hint falls through the cascade",
			section:        Section{Heading: "Soil", HeadingLevel: 2, Hints: &SectionHints{Zone: "basement"}},
			analysis:       SectionAnalysis{ContentType: ContentProse, SemanticWeight: 3},
			index:          3,
			total:          6,
			wantZone:       ZoneMain,
			wantConfidence: 0.6,
		},
	}

	assigner := NewCascadeZoneAssigner()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := assigner.Assign(tt.section, tt.analysis, tt.index, tt.total)
			if got.Zone != tt.wantZone {
				t.Errorf("zone = %q, want %q", got.Zone, tt.wantZone)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.SectionIndex != tt.index {
				t.Errorf("sectionIndex = %d, want %d", got.SectionIndex, tt.index)
			}
		})
	}
}

// TestCascadeZoneAssigner_Total checks that every section of a document
// receives exactly one valid zone.
func TestCascadeZoneAssigner_Total(t *testing.T) {
	t.Parallel()

	sections := []Section{
		{Heading: "Guide", HeadingLevel: 1},
		{Heading: "Overview", HeadingLevel: 2},
		{Heading: "Steps", HeadingLevel: 2, Body: "1. a\n2. b"},
		{Heading: "About Us", HeadingLevel: 2},
		{Body: "No heading."},
		{Heading: "Wrap Up", HeadingLevel: 2},
	}
	analyses := NewHeuristicAnalyzer().Analyze(sections, nil)

	assigner := NewCascadeZoneAssigner()
	for i := range sections {
		got := assigner.Assign(sections[i], analyses[i], i, len(sections))
		if !isValidZone(got.Zone) {
			t.Errorf("section %d: invalid zone %q", i, got.Zone)
		}
		if got.Confidence <= 0 || got.Confidence > 1 {
			t.Errorf("section %d: confidence %v out of (0,1]", i, got.Confidence)
		}
	}
}
