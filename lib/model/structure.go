package model

import (
	"github.com/samber/lo"
)

// Group is one directory and the files that must exist inside it. Dir is
// relative to the scaffold root and uses forward slashes.
type Group struct {
	Dir   string
	Files []string
}

// Category is a named ordered list of groups (frontend, backend, ...).
type Category struct {
	Name   string
	Groups []Group
}

// Structure is the declarative layout to materialize: ordered categories
// plus stray files addressed by their full relative path.
//
// Paths in a Structure are trusted as-is. The built-in layout is a fixed
// literal; structures coming from user files are validated by specfile
// before they get here.
type Structure struct {
	Categories []Category
	Extras     []string
}

// Groups flattens all categories, keeping declaration order.
func (s *Structure) Groups() []Group {
	return lo.FlatMap(s.Categories, func(c Category, _ int) []Group {
		return c.Groups
	})
}

// GroupCount is the number of declared groups across all categories.
// Extras are not groups and are not counted.
func (s *Structure) GroupCount() int {
	return lo.SumBy(s.Categories, func(c Category) int {
		return len(c.Groups)
	})
}

// FileCount is the number of declared files, extras included.
func (s *Structure) FileCount() int {
	return lo.SumBy(s.Groups(), func(g Group) int {
		return len(g.Files)
	}) + len(s.Extras)
}
