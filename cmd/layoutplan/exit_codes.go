package main

import (
	"errors"
	"os"

	layoutplan "github.com/alnah/go-layoutplan"
	"github.com/alnah/go-layoutplan/internal/config"
	"github.com/alnah/go-layoutplan/internal/sectionize"
)

// Exit codes for the layoutplan CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Blueprint generated, no validation issues
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or brand profile
	ExitIO      = 3 // File not found, permission denied
	ExitIssues  = 4 // Blueprint generated but validation recorded issues
)

// CLI-level sentinel errors.
var (
	ErrNoInput       = errors.New("no input file specified")
	ErrTooManyInputs = errors.New("expected exactly one input file")
	ErrReadInput     = errors.New("failed to read input")
	ErrReadBrand     = errors.New("failed to read brand profile")
	ErrWriteOutput   = errors.New("failed to write blueprint")
	ErrHasIssues     = errors.New("blueprint generated with validation issues")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Degraded-but-delivered (exit 4): the blueprint was still written.
	if errors.Is(err, ErrHasIssues) {
		return ExitIssues
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadBrand) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, sectionize.ErrEmptyDocument) ||
		errors.Is(err, layoutplan.ErrInvalidPersonality) ||
		errors.Is(err, layoutplan.ErrInvalidMotion) ||
		errors.Is(err, layoutplan.ErrInvalidLayoutStyle) ||
		errors.Is(err, layoutplan.ErrInvalidDensity) ||
		errors.Is(err, layoutplan.ErrInvalidContentWidth) ||
		errors.Is(err, layoutplan.ErrInvalidHeroStyle) ||
		errors.Is(err, layoutplan.ErrInvalidColorMode) ||
		errors.Is(err, layoutplan.ErrUnknownComponent) {
		return ExitUsage
	}

	return ExitGeneral
}
