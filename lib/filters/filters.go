package filters

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// PathFilter decides whether a root-relative, slash-separated path should
// be touched.
type PathFilter func(relPath string) bool

// ParsePathFilter compiles a rule into a PathFilter. A rule is a
// doublestar pattern; | joins alternatives, any of which may match. An
// empty rule matches everything.
func ParsePathFilter(rule string) (PathFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(relPath string) bool {
			return true
		}, nil

	case strings.Contains(rule, "|"):
		clauses, err := parsePathFilterList(strings.Split(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(relPath string) bool {
			result := false
			for _, f := range clauses {
				result = result || f(relPath)
			}
			return result
		}, nil

	default:
		if !doublestar.ValidatePathPattern(rule) {
			return nil, errors.Errorf("invalid path glob: %v", rule)
		}

		return func(relPath string) bool {
			m, err := doublestar.PathMatch(rule, relPath)
			return err == nil && m
		}, nil
	}
}

func parsePathFilterList(rules []string) ([]PathFilter, error) {
	result := make([]PathFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParsePathFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}
