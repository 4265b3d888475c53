package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	layoutplan "github.com/alnah/go-layoutplan"
	"github.com/alnah/go-layoutplan/internal/config"
	"github.com/alnah/go-layoutplan/internal/hints"
	"github.com/alnah/go-layoutplan/internal/sectionize"
	"github.com/alnah/go-layoutplan/internal/yamlutil"
)

// run executes one blueprint generation end to end: load config and brand,
// sectionize the input, generate, and write the blueprint JSON.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintln(stdout, "layoutplan", Version)
		return nil
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	brand, err := loadBrand(resolveBrandPath(flags, cfg))
	if err != nil {
		return err
	}

	source, err := readInput(flags.input, cfg)
	if err != nil {
		return err
	}

	doc, err := sectionize.Split(source)
	if err != nil {
		if errors.Is(err, sectionize.ErrEmptyDocument) {
			return fmt.Errorf("%w%s", err, hints.ForEmptyDocument())
		}
		return err
	}

	docHints := mergeHints(doc.Hints, flags, cfg)

	if flags.verbose {
		fmt.Fprintf(stderr, "sectionized %d sections\n", len(doc.Sections))
	}

	blueprint := layoutplan.NewEngine().Generate(doc.Sections, brand, docHints)

	if err := writeBlueprint(blueprint, flags, cfg, stdout); err != nil {
		return err
	}

	if !flags.quiet {
		reportValidation(blueprint, stderr)
	}
	if len(blueprint.Validation.Issues) > 0 {
		return fmt.Errorf("%w: %d issues recorded", ErrHasIssues, len(blueprint.Validation.Issues))
	}
	return nil
}

// loadConfig loads the named config, or defaults when no name is given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(triedPathsFromError(err)))
		}
		return nil, err
	}
	return cfg, nil
}

// triedPathsFromError recovers the searched paths from a not-found error for
// hint construction.
func triedPathsFromError(err error) []string {
	msg := err.Error()
	idx := strings.Index(msg, "tried ")
	if idx < 0 {
		return nil
	}
	return strings.Split(msg[idx+len("tried "):], ", ")
}

// resolveBrandPath picks the brand profile path: flag first, then config.
func resolveBrandPath(flags *cliFlags, cfg *config.Config) string {
	if flags.brand != "" {
		return flags.brand
	}
	return cfg.Brand.Profile
}

// loadBrand reads and validates a brand profile, or returns nil (defaults)
// when no path is configured.
func loadBrand(path string) (*layoutplan.BrandProfile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- brand path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v%s", ErrReadBrand, path, err, hints.ForBrandNotFound())
	}
	var brand layoutplan.BrandProfile
	if err := yamlutil.Unmarshal(data, &brand); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadBrand, path, err)
	}
	if err := brand.Validate(); err != nil {
		return nil, fmt.Errorf("brand profile %s: %w", path, err)
	}
	return &brand, nil
}

// readInput reads the markdown source from a file, stdin ("-"), or the
// config default directory.
func readInput(input string, cfg *config.Config) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return data, nil
	}
	path := input
	if !filepath.IsAbs(path) && cfg.Input.DefaultDir != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filepath.Join(cfg.Input.DefaultDir, input)
		}
	}
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}
	return data, nil
}

// mergeHints layers document hints: front matter first, config defaults
// fill gaps, explicit flags win.
func mergeHints(fromDoc *layoutplan.DocumentHints, flags *cliFlags, cfg *config.Config) *layoutplan.DocumentHints {
	merged := layoutplan.DocumentHints{
		TopicTitle:   cfg.Document.Topic,
		PillarTopic:  cfg.Document.Pillar,
		SearchIntent: cfg.Document.Intent,
	}
	if fromDoc != nil {
		if fromDoc.TopicTitle != "" {
			merged.TopicTitle = fromDoc.TopicTitle
		}
		if fromDoc.SearchIntent != "" {
			merged.SearchIntent = fromDoc.SearchIntent
		}
		merged.PillarTopic = merged.PillarTopic || fromDoc.PillarTopic
	}
	if flags.topic != "" {
		merged.TopicTitle = flags.topic
	}
	if flags.intent != "" {
		merged.SearchIntent = flags.intent
	}
	merged.PillarTopic = merged.PillarTopic || flags.pillar

	if merged == (layoutplan.DocumentHints{}) {
		return nil
	}
	return &merged
}

// writeBlueprint marshals the blueprint to the output file or stdout.
func writeBlueprint(blueprint *layoutplan.LayoutBlueprint, flags *cliFlags, cfg *config.Config, stdout io.Writer) error {
	var data []byte
	var err error
	if flags.pretty || cfg.Output.Pretty {
		data, err = json.MarshalIndent(blueprint, "", "  ")
	} else {
		data, err = json.Marshal(blueprint)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	data = append(data, '\n')

	out := flags.output
	if out == "" && cfg.Output.DefaultDir != "" {
		out = filepath.Join(cfg.Output.DefaultDir, blueprintFileName(flags.input))
	}
	if out == "" {
		_, err = stdout.Write(data)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.WriteFile(out, data, 0o644); err != nil { // #nosec G306 -- blueprint is not sensitive
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, out, err, hints.ForOutputDirectory())
	}
	return nil
}

// blueprintFileName derives the output file name from the input name.
func blueprintFileName(input string) string {
	base := filepath.Base(input)
	if base == "-" || base == "." {
		base = "blueprint"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".blueprint.json"
}

// reportValidation prints the validation outcome to stderr.
func reportValidation(blueprint *layoutplan.LayoutBlueprint, stderr io.Writer) {
	v := blueprint.Validation
	if len(v.Issues) == 0 {
		fmt.Fprintf(stderr, "blueprint %s: %d sections, alignment %d, no issues\n",
			blueprint.ID, len(blueprint.Sections), v.BrandAlignmentScore)
		return
	}
	fmt.Fprintf(stderr, "blueprint %s: %d sections, alignment %d, %d issues:\n",
		blueprint.ID, len(blueprint.Sections), v.BrandAlignmentScore, len(v.Issues))
	for _, issue := range v.Issues {
		fmt.Fprintf(stderr, "  - %s\n", issue)
	}
}
