package predicate

import (
	"fmt"

	"github.com/gofinch/parafind/internal/sysmeta"
)

// TypeFilter restricts results by entry type. Symlink is decided from the
// lstat view — the link itself, never its target.
type TypeFilter int

const (
	TypeAny TypeFilter = iota
	TypeFile
	TypeDir
	TypeSymlink
)

// ParseTypeFilter parses the grammar f|file|d|dir|l|link|symlink|any
// (case-sensitive on the short form).
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch s {
	case "f", "file":
		return TypeFile, nil
	case "d", "dir":
		return TypeDir, nil
	case "l", "link", "symlink":
		return TypeSymlink, nil
	case "any":
		return TypeAny, nil
	default:
		return TypeAny, invalidFilter("type", s, fmt.Errorf("use f|file|d|dir|l|link|symlink|any"))
	}
}

// Match reports whether meta satisfies the type filter.
func (t TypeFilter) Match(meta *sysmeta.EntryMeta) bool {
	switch t {
	case TypeAny:
		return true
	case TypeFile:
		return meta.IsRegular
	case TypeDir:
		return meta.IsDir
	case TypeSymlink:
		return meta.IsSymlink
	default:
		return false
	}
}

func (t TypeFilter) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	case TypeSymlink:
		return "symlink"
	default:
		return "any"
	}
}
