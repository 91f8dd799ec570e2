// Package predicate implements the matching surface available to a scan:
// name, type, time, size, permission, and ownership predicates evaluated
// against a directory entry's lstat metadata.
package predicate

import (
	"time"

	"github.com/gofinch/parafind/internal/sysmeta"
)

// Bundle is an immutable collection of all active filters for one engine
// run. It is built once by the driver and shared by reference across all
// scanners; it is never mutated after construction.
type Bundle struct {
	Name  NameMatcher
	Type  TypeFilter
	Mtime *TimeFilter
	Atime *TimeFilter
	Ctime *TimeFilter
	Size  *SizeFilter
	Perm  *PermissionFilter
	Owner *OwnershipFilter
}

// Evaluate runs the bundle against meta, short-circuiting on first
// failure in the order name -> type -> size -> mtime -> atime -> ctime
// -> permission -> ownership. now is the reference time age-based
// filters measure against.
func (b *Bundle) Evaluate(meta *sysmeta.EntryMeta, now time.Time) bool {
	if b.Name != nil && !b.Name.Match(meta.Name) {
		return false
	}
	if !b.Type.Match(meta) {
		return false
	}
	if b.Size != nil && !b.Size.Match(meta.Size) {
		return false
	}
	if b.Mtime != nil && !b.Mtime.Match(meta.ModTime, now) {
		return false
	}
	if b.Atime != nil && !b.Atime.Match(meta.AccessTime, now) {
		return false
	}
	if b.Ctime != nil && !b.Ctime.Match(meta.ChangeTime, now) {
		return false
	}
	if b.Perm != nil && !b.Perm.Match(meta) {
		return false
	}
	if b.Owner != nil && !b.Owner.Match(meta) {
		return false
	}
	return true
}
