// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
// It also extracts YAML front matter from markdown documents.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// frontMatterDelimiter opens and closes a YAML front matter block.
var frontMatterDelimiter = []byte("---")

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// SplitFrontMatter separates a leading YAML front matter block from the body.
// The block must start on the first line with "---" and close with another
// "---" line. Documents without front matter return (nil, doc, nil).
// A malformed block (opened but never closed) is treated as body content.
func SplitFrontMatter(doc []byte) (meta []byte, body []byte, err error) {
	if !bytes.HasPrefix(doc, frontMatterDelimiter) {
		return nil, doc, nil
	}
	rest, ok := cutLine(doc)
	if !ok {
		return nil, doc, nil
	}

	lines := bytes.SplitAfter(rest, []byte("\n"))
	var metaBuf bytes.Buffer
	for i, line := range lines {
		if bytes.Equal(bytes.TrimRight(line, "\r\n"), frontMatterDelimiter) {
			body = bytes.Join(lines[i+1:], nil)
			meta = metaBuf.Bytes()
			if len(meta) > MaxInputSize {
				return nil, nil, fmt.Errorf("%w: front matter %d bytes (max %d)", ErrInputTooLarge, len(meta), MaxInputSize)
			}
			return meta, body, nil
		}
		metaBuf.Write(line)
	}

	// Opening delimiter without a closing one: not front matter.
	return nil, doc, nil
}

// UnmarshalFrontMatter extracts and parses the front matter block into v.
// Returns the remaining body. When no front matter exists, v is untouched
// and the full document is returned as body.
func UnmarshalFrontMatter(doc []byte, v any) (body []byte, err error) {
	meta, body, err := SplitFrontMatter(doc)
	if err != nil {
		return nil, err
	}
	if len(meta) == 0 {
		return body, nil
	}
	if err := Unmarshal(meta, v); err != nil {
		return nil, err
	}
	return body, nil
}

// cutLine drops the first line of b, returning the remainder.
func cutLine(b []byte) ([]byte, bool) {
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return nil, false
	}
	return b[i+1:], true
}
