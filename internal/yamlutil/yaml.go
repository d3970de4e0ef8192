// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// frontMatterDelimiter opens and closes a front matter block.
const frontMatterDelimiter = "---"

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

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

// SplitFrontMatter separates a leading front matter block from a document.
// The block must start on the first line with "---" and end at the next
// line that is exactly "---". Without a complete block, ok is false and
// body is the whole document.
func SplitFrontMatter(content string) (frontMatter, body string, ok bool) {
	content = strings.TrimPrefix(content, "\ufeff")
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, "\r") != frontMatterDelimiter {
		return "", content, false
	}

	offset := 0
	for offset <= len(rest) {
		line, _, more := strings.Cut(rest[offset:], "\n")
		if strings.TrimRight(line, "\r") == frontMatterDelimiter {
			end := offset + len(line)
			if more {
				end++
			}
			return rest[:offset], rest[end:], true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}

	return "", content, false
}

// FrontMatter holds the metadata of a front matter block.
type FrontMatter map[string]any

// String returns a string field, or "" when absent or not a string.
func (f FrontMatter) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// ParseFrontMatter strips front matter from content and decodes it.
// The body is returned even when decoding fails, so callers can keep going
// with the stripped document.
func ParseFrontMatter(content string) (FrontMatter, string, error) {
	raw, body, ok := SplitFrontMatter(content)
	if !ok {
		return nil, content, nil
	}
	if strings.TrimSpace(raw) == "" {
		return FrontMatter{}, body, nil
	}

	var meta FrontMatter
	if err := Unmarshal([]byte(raw), &meta); err != nil {
		return nil, body, err
	}
	return meta, body, nil
}
