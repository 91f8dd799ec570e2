package predicate

import "github.com/gofinch/parafind/internal/sysmeta"

// OwnershipFilter matches numeric UID and/or GID. An absent field accepts
// any value.
type OwnershipFilter struct {
	UID *uint32
	GID *uint32
}

// NewOwnershipFilter builds an OwnershipFilter from optional UID/GID.
func NewOwnershipFilter(uid, gid *uint32) *OwnershipFilter {
	return &OwnershipFilter{UID: uid, GID: gid}
}

// Match reports whether meta's owner satisfies the filter. It returns
// false on platforms without POSIX ownership metadata.
func (f *OwnershipFilter) Match(meta *sysmeta.EntryMeta) bool {
	if !meta.HasPOSIX {
		return false
	}
	if f.UID != nil && meta.UID != *f.UID {
		return false
	}
	if f.GID != nil && meta.GID != *f.GID {
		return false
	}
	return true
}
