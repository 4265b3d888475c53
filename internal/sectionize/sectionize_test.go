package sectionize_test

// Notes:
// - Bodies keep their raw markdown: downstream classification inspects list
//   markers, table pipes, and fences, so splitting must not normalize them.
// - The code hint requires a fence with a language chroma recognizes; plain
//   fences stay unhinted.

import (
	"errors"
	"testing"

	layoutplan "github.com/alnah/go-layoutplan"
	"github.com/alnah/go-layoutplan/internal/sectionize"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	source := []byte(`# Growing Ferns

A practical guide.

## Light

Ferns prefer shade.

## Watering

Keep the soil moist.

1. Check daily.
2. Mist the fronds.
`)

	doc, err := sectionize.Split(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Hints != nil {
		t.Errorf("hints = %+v, want nil without front matter", doc.Hints)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(doc.Sections))
	}

	title := doc.Sections[0]
	if title.Heading != "Growing Ferns" || title.HeadingLevel != 1 {
		t.Errorf("title = %q level %d, want %q level 1", title.Heading, title.HeadingLevel, "Growing Ferns")
	}
	if title.Body != "A practical guide." {
		t.Errorf("title body = %q", title.Body)
	}

	watering := doc.Sections[2]
	if watering.Heading != "Watering" || watering.HeadingLevel != 2 {
		t.Errorf("watering = %q level %d", watering.Heading, watering.HeadingLevel)
	}
	if watering.Body != "Keep the soil moist.\n\n1. Check daily.\n2. Mist the fronds." {
		t.Errorf("watering body = %q", watering.Body)
	}

	for i, s := range doc.Sections {
		if s.Position != i {
			t.Errorf("section %d: position = %d", i, s.Position)
		}
	}
}

func TestSplit_Preamble(t *testing.T) {
	t.Parallel()

	doc, err := sectionize.Split([]byte("Opening words before any heading.\n\n## First\n\nContent."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(doc.Sections))
	}

	preamble := doc.Sections[0]
	if preamble.HeadingLevel != 0 || preamble.Heading != "" {
		t.Errorf("preamble carries a heading: %q level %d", preamble.Heading, preamble.HeadingLevel)
	}
	if preamble.Body != "Opening words before any heading." {
		t.Errorf("preamble body = %q", preamble.Body)
	}
}

func TestSplit_NoHeadings(t *testing.T) {
	t.Parallel()

	doc, err := sectionize.Split([]byte("Just a paragraph.\n\nAnd another one."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	if doc.Sections[0].HeadingLevel != 0 {
		t.Errorf("headingLevel = %d, want 0", doc.Sections[0].HeadingLevel)
	}
	if doc.Sections[0].Body != "Just a paragraph.\n\nAnd another one." {
		t.Errorf("body = %q", doc.Sections[0].Body)
	}
}

func TestSplit_FrontMatter(t *testing.T) {
	t.Parallel()

	source := []byte(`---
title: Growing Ferns
pillar: true
intent: how to grow ferns indoors
---
# Growing Ferns

Guide body.
`)

	doc, err := sectionize.Split(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Hints == nil {
		t.Fatal("hints missing")
	}
	want := layoutplan.DocumentHints{
		TopicTitle:   "Growing Ferns",
		PillarTopic:  true,
		SearchIntent: "how to grow ferns indoors",
	}
	if *doc.Hints != want {
		t.Errorf("hints = %+v, want %+v", *doc.Hints, want)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].Heading != "Growing Ferns" {
		t.Errorf("sections = %+v, want the one titled section", doc.Sections)
	}
}

func TestSplit_Empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{name: "empty input", source: ""},
		{name: "whitespace only", source: "  \n\t\n"},
		{name: "front matter only", source: "---\ntitle: Ferns\n---\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := sectionize.Split([]byte(tt.source))
			if !errors.Is(err, sectionize.ErrEmptyDocument) {
				t.Fatalf("error = %v, want %v", err, sectionize.ErrEmptyDocument)
			}
		})
	}
}

func TestSplit_BadFrontMatter(t *testing.T) {
	t.Parallel()

	_, err := sectionize.Split([]byte("---\ntitle: [unclosed\n---\nbody"))
	if err == nil {
		t.Fatal("expected error for invalid front matter")
	}
}

func TestSplit_CodeHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		wantHint bool
	}{
		{
			name:     "recognized language fence opens the section",
			source:   "## Usage\n\n```go\npackage main\n```",
			wantHint: true,
		},
		{
			name:     "bare fence carries no hint",
			source:   "## Usage\n\n```\nsome output\n```",
			wantHint: false,
		},
		{
			name:     "unknown language carries no hint",
			source:   "## Usage\n\n```klingon\nqapla\n```",
			wantHint: false,
		},
		{
			name:     "fence after prose carries no hint",
			source:   "## Usage\n\nRun the tool like this:\n\n```go\npackage main\n```",
			wantHint: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := sectionize.Split([]byte(tt.source))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(doc.Sections) != 1 {
				t.Fatalf("sections = %d, want 1", len(doc.Sections))
			}
			got := doc.Sections[0].Hints != nil && doc.Sections[0].Hints.Format == layoutplan.FormatCode
			if got != tt.wantHint {
				t.Errorf("code hint = %v, want %v", got, tt.wantHint)
			}
		})
	}
}

func TestSplit_SetextHeading(t *testing.T) {
	t.Parallel()

	doc, err := sectionize.Split([]byte("Growing Ferns\n=============\n\nGuide body."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	s := doc.Sections[0]
	if s.Heading != "Growing Ferns" || s.HeadingLevel != 1 {
		t.Errorf("heading = %q level %d, want %q level 1", s.Heading, s.HeadingLevel, "Growing Ferns")
	}
	if s.Body != "Guide body." {
		t.Errorf("body = %q, want %q", s.Body, "Guide body.")
	}
}
