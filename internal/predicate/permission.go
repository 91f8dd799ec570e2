package predicate

import (
	"fmt"

	"github.com/gofinch/parafind/internal/sysmeta"
)

// PermissionSubject is the [ugoa] field of a permission filter.
type PermissionSubject byte

const (
	SubjectUser   PermissionSubject = 'u'
	SubjectGroup  PermissionSubject = 'g'
	SubjectOthers PermissionSubject = 'o'
	SubjectAll    PermissionSubject = 'a'
)

// PermissionBit is the [rwxs] field of a permission filter.
type PermissionBit byte

const (
	BitRead    PermissionBit = 'r'
	BitWrite   PermissionBit = 'w'
	BitExecute PermissionBit = 'x'
	BitSetID   PermissionBit = 's'
)

// PermissionFilter matches subject/polarity/bit against an entry's POSIX
// mode bits. Grounded verbatim on original_source/src/permissions.rs.
type PermissionFilter struct {
	Subject PermissionSubject
	Present bool // true: '+' (bit must be present); false: '-' (bit must be absent)
	Bit     PermissionBit
	raw     string
}

// ParsePermissionFilter parses the grammar [ugoa][+-][rwxs]. 's' is valid
// only for subjects u or g.
func ParsePermissionFilter(s string) (*PermissionFilter, error) {
	raw := s
	if len(s) != 3 {
		return nil, invalidFilter("perm", raw, fmt.Errorf("must be exactly 3 characters"))
	}

	var subject PermissionSubject
	switch s[0] {
	case 'u', 'g', 'o', 'a':
		subject = PermissionSubject(s[0])
	default:
		return nil, invalidFilter("perm", raw, fmt.Errorf("invalid subject %q, use u, g, o, or a", s[0:1]))
	}

	var present bool
	switch s[1] {
	case '+':
		present = true
	case '-':
		present = false
	default:
		return nil, invalidFilter("perm", raw, fmt.Errorf("invalid operator %q, use + or -", s[1:2]))
	}

	var bit PermissionBit
	switch s[2] {
	case 'r', 'w', 'x', 's':
		bit = PermissionBit(s[2])
	default:
		return nil, invalidFilter("perm", raw, fmt.Errorf("invalid bit %q, use r, w, x, or s", s[2:3]))
	}

	if bit == BitSetID && subject != SubjectUser && subject != SubjectGroup {
		return nil, invalidFilter("perm", raw, fmt.Errorf("s is only valid for subject u or g"))
	}

	return &PermissionFilter{Subject: subject, Present: present, Bit: bit, raw: raw}, nil
}

// fieldMask returns the 3-bit rwx mask for one subject field.
func fieldMask(subject PermissionSubject) uint32 {
	switch subject {
	case SubjectUser:
		return 0o700
	case SubjectGroup:
		return 0o070
	case SubjectOthers:
		return 0o007
	default:
		return 0
	}
}

func checkField(mode uint32, field uint32, bit PermissionBit, subject PermissionSubject) bool {
	switch bit {
	case BitRead:
		return mode&field&0o444 != 0
	case BitWrite:
		return mode&field&0o222 != 0
	case BitExecute:
		return mode&field&0o111 != 0
	case BitSetID:
		switch subject {
		case SubjectUser:
			return mode&0o4000 != 0
		case SubjectGroup:
			return mode&0o2000 != 0
		default:
			return false
		}
	default:
		return false
	}
}

// Match reports whether meta's POSIX mode bits satisfy the filter. It
// returns false (never matches) on platforms where meta.HasPOSIX is
// false; the engine driver is responsible for rejecting permission
// filters at startup on such platforms rather than relying on this.
func (f *PermissionFilter) Match(meta *sysmeta.EntryMeta) bool {
	if !meta.HasPOSIX {
		return false
	}

	var result bool
	switch f.Subject {
	case SubjectAll:
		result = checkField(meta.RawMode, fieldMask(SubjectUser), f.Bit, SubjectUser) &&
			checkField(meta.RawMode, fieldMask(SubjectGroup), f.Bit, SubjectGroup) &&
			checkField(meta.RawMode, fieldMask(SubjectOthers), f.Bit, SubjectOthers)
	default:
		result = checkField(meta.RawMode, fieldMask(f.Subject), f.Bit, f.Subject)
	}

	return result == f.Present
}

func (f *PermissionFilter) String() string { return f.raw }
