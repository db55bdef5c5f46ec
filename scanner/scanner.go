package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner lists the report files under a root directory that match an
// Ant-style include pattern.
type Scanner interface {
	Scan(rootDir, includePattern string) ([]string, error)
}

type scanner struct{}

// NewScanner ...
func NewScanner() Scanner {
	return scanner{}
}

// Scan walks rootDir and returns root-relative, slash-separated paths of the
// files matching the include pattern, in lexical walk order. The pattern
// understands `**`, `*` and `?`; a comma or whitespace separated pattern list
// matches a file when any item does.
func (scanner) Scan(rootDir, includePattern string) ([]string, error) {
	patterns := splitPatterns(includePattern)
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern (%s)", pattern)
		}
	}

	var matches []string
	err := filepath.WalkDir(rootDir, func(pth string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(rootDir, pth)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range patterns {
			matched, err := doublestar.Match(pattern, rel)
			if err != nil {
				return fmt.Errorf("match include pattern (%s): %w", pattern, err)
			}
			if matched {
				matches = append(matches, rel)
				break
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan report directory (%s): %w", rootDir, err)
	}

	return matches, nil
}

func splitPatterns(includePattern string) []string {
	return strings.FieldsFunc(includePattern, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
