// Package sectionize splits a markdown document into the ordered sections
// the layout pipeline consumes. It parses with goldmark so fenced code,
// tables, and lists are recognized structurally rather than by line
// guessing, and it reads document hints from YAML front matter.
package sectionize

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	layoutplan "github.com/alnah/go-layoutplan"
	"github.com/alnah/go-layoutplan/internal/yamlutil"
)

// ErrEmptyDocument indicates the document has no content to sectionize.
var ErrEmptyDocument = errors.New("sectionize: document is empty")

// Document is the sectionizer's output: ordered sections plus the hints
// extracted from front matter.
type Document struct {
	Sections []layoutplan.Section
	Hints    *layoutplan.DocumentHints
}

// frontMatter is the recognized front matter schema. Unknown keys are
// tolerated; front matter written for other tools should not break splitting.
type frontMatter struct {
	Title  string `yaml:"title"`
	Pillar bool   `yaml:"pillar"`
	Intent string `yaml:"intent"`
}

// markdown is the shared parser. GFM gives structural tables and task
// lists; auto heading IDs keep parity with the downstream renderer.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Split breaks a markdown document into ordered sections. Front matter is
// stripped and returned as document hints. A document without headings
// collapses into a single heading-less section holding the whole body.
func Split(source []byte) (*Document, error) {
	if len(bytes.TrimSpace(source)) == 0 {
		return nil, ErrEmptyDocument
	}

	var meta frontMatter
	body, err := yamlutil.UnmarshalFrontMatter(source, &meta)
	if err != nil {
		return nil, fmt.Errorf("sectionize: front matter: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyDocument
	}

	doc := &Document{Hints: hintsFromMeta(meta)}
	doc.Sections = splitSections(body)
	return doc, nil
}

// hintsFromMeta converts front matter to document hints, or nil when the
// front matter carried nothing relevant.
func hintsFromMeta(meta frontMatter) *layoutplan.DocumentHints {
	if meta.Title == "" && meta.Intent == "" && !meta.Pillar {
		return nil
	}
	return &layoutplan.DocumentHints{
		TopicTitle:   meta.Title,
		PillarTopic:  meta.Pillar,
		SearchIntent: meta.Intent,
	}
}

// headingMark is one heading found in the AST with its byte offsets.
type headingMark struct {
	level     int
	text      string
	lineStart int // offset of the "#" that opens the heading line
	bodyStart int // offset just past the heading content
}

// splitSections walks the parsed AST to find headings, then slices the raw
// source between them so each section keeps its original markdown body.
func splitSections(body []byte) []layoutplan.Section {
	root := markdown.Parser().Parse(text.NewReader(body))
	marks := collectHeadings(root, body)

	// No headings: the whole document is one section.
	if len(marks) == 0 {
		return []layoutplan.Section{{
			Body:     strings.TrimSpace(string(body)),
			Position: 0,
		}}
	}

	sections := make([]layoutplan.Section, 0, len(marks)+1)

	// Preamble before the first heading becomes a heading-less section.
	if preamble := strings.TrimSpace(string(body[:marks[0].lineStart])); preamble != "" {
		sections = append(sections, layoutplan.Section{
			Body:     preamble,
			Position: 0,
		})
	}

	for i, mark := range marks {
		end := len(body)
		if i+1 < len(marks) {
			end = marks[i+1].lineStart
		}
		sectionBody := strings.TrimSpace(string(body[mark.bodyStart:end]))
		section := layoutplan.Section{
			Heading:      mark.text,
			HeadingLevel: mark.level,
			Body:         sectionBody,
			Position:     len(sections),
		}
		// Only a section that opens with a recognized-language fence is
		// hinted as code; a snippet inside prose stays whatever the
		// analyzer makes of the prose.
		if opensWithCodeFence(sectionBody) && recognizedCodeLanguage(sectionBody) != "" {
			section.Hints = &layoutplan.SectionHints{Format: layoutplan.FormatCode}
		}
		sections = append(sections, section)
	}

	return sections
}

// collectHeadings finds every heading in document order with byte offsets
// into the source.
func collectHeadings(root ast.Node, source []byte) []headingMark {
	var marks []headingMark
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		first := heading.Lines().At(0)
		last := heading.Lines().At(heading.Lines().Len() - 1)
		lineStart := lineStartBefore(source, first.Start)
		bodyStart := last.Stop
		if lineStart < len(source) && source[lineStart] != '#' {
			// Setext heading: skip past the === or --- underline on the
			// line after the heading text.
			bodyStart = skipLine(source, skipLine(source, bodyStart))
		}
		marks = append(marks, headingMark{
			level:     heading.Level,
			text:      nodeText(heading, source),
			lineStart: lineStart,
			bodyStart: bodyStart,
		})
		return ast.WalkSkipChildren, nil
	})
	return marks
}

// nodeText concatenates the plain text content of a node.
func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

// skipLine advances pos past the end of its line.
func skipLine(source []byte, pos int) int {
	if pos >= len(source) {
		return len(source)
	}
	i := bytes.IndexByte(source[pos:], '\n')
	if i < 0 {
		return len(source)
	}
	return pos + i + 1
}

// lineStartBefore returns the offset of the line containing pos.
func lineStartBefore(source []byte, pos int) int {
	if pos > len(source) {
		pos = len(source)
	}
	return bytes.LastIndexByte(source[:pos], '\n') + 1
}

// Fence markers that open a code block.
var codeFenceInfo = [2]string{"```", "~~~"}

// opensWithCodeFence reports whether the body's first non-blank line opens a
// fenced code block.
func opensWithCodeFence(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, codeFenceInfo[0]) || strings.HasPrefix(trimmed, codeFenceInfo[1])
	}
	return false
}

// recognizedCodeLanguage returns the first fenced-code language in the body
// that chroma recognizes, or "" when none does. A recognized language marks
// the section as code content for the analyzer.
func recognizedCodeLanguage(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, fence := range codeFenceInfo {
			if !strings.HasPrefix(trimmed, fence) {
				continue
			}
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, fence))
			if lang == "" {
				continue
			}
			if lexers.Get(lang) != nil {
				return lang
			}
		}
	}
	return ""
}
