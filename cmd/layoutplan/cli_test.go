package main

// Notes:
// - parseFlags(--help) calls os.Exit, so the help path is not unit-tested.
// - run() is tested end to end with temp files; it needs no network and no
//   external binaries.

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	layoutplan "github.com/alnah/go-layoutplan"
	"github.com/alnah/go-layoutplan/internal/config"
	"github.com/alnah/go-layoutplan/internal/sectionize"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("no input returns ErrNoInput", func(t *testing.T) {
		t.Parallel()

		if _, err := parseFlags(nil); !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("two inputs return ErrTooManyInputs", func(t *testing.T) {
		t.Parallel()

		if _, err := parseFlags([]string{"a.md", "b.md"}); !errors.Is(err, ErrTooManyInputs) {
			t.Errorf("error = %v, want ErrTooManyInputs", err)
		}
	})

	t.Run("unknown flag fails", func(t *testing.T) {
		t.Parallel()

		if _, err := parseFlags([]string{"--render", "a.md"}); err == nil {
			t.Error("expected error for unknown flag")
		}
	})

	t.Run("version needs no input", func(t *testing.T) {
		t.Parallel()

		flags, err := parseFlags([]string{"--version"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !flags.version {
			t.Error("version = false, want true")
		}
	})

	t.Run("all flags parse", func(t *testing.T) {
		t.Parallel()

		flags, err := parseFlags([]string{
			"-o", "out.json",
			"-c", "myconfig",
			"--brand", "brand.yaml",
			"--topic", "Growing Ferns",
			"--pillar",
			"--intent", "how to grow ferns",
			"--pretty",
			"-q",
			"article.md",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.input != "article.md" {
			t.Errorf("input = %q", flags.input)
		}
		if flags.output != "out.json" || flags.config != "myconfig" || flags.brand != "brand.yaml" {
			t.Errorf("io flags = %+v", flags)
		}
		if flags.topic != "Growing Ferns" || !flags.pillar || flags.intent != "how to grow ferns" {
			t.Errorf("hint flags = %+v", flags)
		}
		if !flags.pretty || !flags.quiet {
			t.Errorf("output flags = %+v", flags)
		}
	})

	t.Run("stdin marker is a valid input", func(t *testing.T) {
		t.Parallel()

		flags, err := parseFlags([]string{"-"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.input != "-" {
			t.Errorf("input = %q, want -", flags.input)
		}
	})
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: ExitSuccess},
		{name: "validation issues", err: ErrHasIssues, want: ExitIssues},
		{name: "missing input file", err: ErrReadInput, want: ExitIO},
		{name: "missing brand file", err: ErrReadBrand, want: ExitIO},
		{name: "write failure", err: ErrWriteOutput, want: ExitIO},
		{name: "os not-exist", err: os.ErrNotExist, want: ExitIO},
		{name: "no input argument", err: ErrNoInput, want: ExitUsage},
		{name: "too many inputs", err: ErrTooManyInputs, want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse failure", err: config.ErrConfigParse, want: ExitUsage},
		{name: "empty document", err: sectionize.ErrEmptyDocument, want: ExitUsage},
		{name: "invalid brand motion", err: layoutplan.ErrInvalidMotion, want: ExitUsage},
		{name: "anything else", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestBlueprintFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "article.md", want: "article.blueprint.json"},
		{input: "content/guide.markdown", want: "guide.blueprint.json"},
		{input: "-", want: "blueprint.blueprint.json"},
		{input: "noext", want: "noext.blueprint.json"},
	}

	for _, tt := range tests {
		tt := tt
		if got := blueprintFileName(tt.input); got != tt.want {
			t.Errorf("blueprintFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMergeHints(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Document: config.DocumentConfig{
		Topic:  "Config Topic",
		Intent: "config intent",
	}}

	t.Run("config fills gaps", func(t *testing.T) {
		t.Parallel()

		got := mergeHints(nil, &cliFlags{}, cfg)
		if got == nil || got.TopicTitle != "Config Topic" || got.SearchIntent != "config intent" {
			t.Errorf("merged = %+v", got)
		}
	})

	t.Run("front matter beats config", func(t *testing.T) {
		t.Parallel()

		fromDoc := &layoutplan.DocumentHints{TopicTitle: "Doc Topic", PillarTopic: true}
		got := mergeHints(fromDoc, &cliFlags{}, cfg)
		if got.TopicTitle != "Doc Topic" {
			t.Errorf("topicTitle = %q, want %q", got.TopicTitle, "Doc Topic")
		}
		if got.SearchIntent != "config intent" {
			t.Errorf("searchIntent = %q, want the config gap fill", got.SearchIntent)
		}
		if !got.PillarTopic {
			t.Error("pillarTopic = false, want true")
		}
	})

	t.Run("flags beat everything", func(t *testing.T) {
		t.Parallel()

		fromDoc := &layoutplan.DocumentHints{TopicTitle: "Doc Topic"}
		flags := &cliFlags{topic: "Flag Topic", intent: "flag intent", pillar: true}
		got := mergeHints(fromDoc, flags, cfg)
		if got.TopicTitle != "Flag Topic" || got.SearchIntent != "flag intent" || !got.PillarTopic {
			t.Errorf("merged = %+v", got)
		}
	})

	t.Run("nothing set yields nil", func(t *testing.T) {
		t.Parallel()

		if got := mergeHints(nil, &cliFlags{}, config.DefaultConfig()); got != nil {
			t.Errorf("merged = %+v, want nil", got)
		}
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	writeFile := func(t *testing.T, dir, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	article := `---
title: Growing Ferns
pillar: true
---
# Growing Ferns

A practical guide.

## Care

Water often.
`

	t.Run("writes the blueprint to stdout", func(t *testing.T) {
		t.Parallel()

		input := writeFile(t, t.TempDir(), "article.md", article)
		var stdout, stderr bytes.Buffer

		err := run(&cliFlags{input: input}, &stdout, &stderr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var blueprint layoutplan.LayoutBlueprint
		if err := json.Unmarshal(stdout.Bytes(), &blueprint); err != nil {
			t.Fatalf("stdout is not a JSON blueprint: %v", err)
		}
		if len(blueprint.Sections) != 2 {
			t.Errorf("sections = %d, want 2", len(blueprint.Sections))
		}
		if !strings.Contains(stderr.String(), "no issues") {
			t.Errorf("stderr = %q, want a validation report", stderr.String())
		}
	})

	t.Run("quiet suppresses the report", func(t *testing.T) {
		t.Parallel()

		input := writeFile(t, t.TempDir(), "article.md", article)
		var stdout, stderr bytes.Buffer

		if err := run(&cliFlags{input: input, quiet: true}, &stdout, &stderr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stderr.Len() != 0 {
			t.Errorf("stderr = %q, want empty", stderr.String())
		}
	})

	t.Run("writes the blueprint to a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "article.md", article)
		output := filepath.Join(dir, "article.blueprint.json")
		var stdout, stderr bytes.Buffer

		if err := run(&cliFlags{input: input, output: output, quiet: true}, &stdout, &stderr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty when writing to a file", stdout.String())
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("blueprint file not written: %v", err)
		}
		var blueprint layoutplan.LayoutBlueprint
		if err := json.Unmarshal(data, &blueprint); err != nil {
			t.Fatalf("output is not a JSON blueprint: %v", err)
		}
	})

	t.Run("applies a brand profile", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "article.md", article)
		brand := writeFile(t, dir, "brand.yaml", "name: Acme\ndensity: compact\ncontentWidth: narrow\n")
		var stdout, stderr bytes.Buffer

		if err := run(&cliFlags{input: input, brand: brand, quiet: true}, &stdout, &stderr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var blueprint layoutplan.LayoutBlueprint
		if err := json.Unmarshal(stdout.Bytes(), &blueprint); err != nil {
			t.Fatal(err)
		}
		if blueprint.PageSettings.MaxWidth != "768px" {
			t.Errorf("maxWidth = %q, want %q", blueprint.PageSettings.MaxWidth, "768px")
		}
		if blueprint.PageSettings.BaseSpacing != "16px" {
			t.Errorf("baseSpacing = %q, want %q", blueprint.PageSettings.BaseSpacing, "16px")
		}
	})

	t.Run("invalid brand profile fails with exit-2 class error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "article.md", article)
		brand := writeFile(t, dir, "brand.yaml", "motion: frantic\n")
		var stdout, stderr bytes.Buffer

		err := run(&cliFlags{input: input, brand: brand, quiet: true}, &stdout, &stderr)
		if !errors.Is(err, layoutplan.ErrInvalidMotion) {
			t.Fatalf("error = %v, want ErrInvalidMotion", err)
		}
		if exitCodeFor(err) != ExitUsage {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
		}
	})

	t.Run("missing brand profile fails with a hint", func(t *testing.T) {
		t.Parallel()

		input := writeFile(t, t.TempDir(), "article.md", article)
		var stdout, stderr bytes.Buffer

		err := run(&cliFlags{input: input, brand: "nope.yaml", quiet: true}, &stdout, &stderr)
		if !errors.Is(err, ErrReadBrand) {
			t.Fatalf("error = %v, want ErrReadBrand", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error %q carries no hint", err)
		}
	})

	t.Run("empty document fails with a hint", func(t *testing.T) {
		t.Parallel()

		input := writeFile(t, t.TempDir(), "empty.md", "   \n")
		var stdout, stderr bytes.Buffer

		err := run(&cliFlags{input: input, quiet: true}, &stdout, &stderr)
		if !errors.Is(err, sectionize.ErrEmptyDocument) {
			t.Fatalf("error = %v, want ErrEmptyDocument", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error %q carries no hint", err)
		}
	})

	t.Run("version prints and exits cleanly", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		if err := run(&cliFlags{version: true}, &stdout, &stderr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "layoutplan") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})
}
