package predicate

import (
	"fmt"
	"strconv"
)

// SizeComparison is the comparison mode carried by a size sign prefix.
type SizeComparison int

const (
	SizeExact SizeComparison = iota
	SizeLess
	SizeGreater
)

// SizeUnit is the unit suffix of a size filter.
type SizeUnit byte

const (
	UnitBytes     SizeUnit = 'c'
	UnitKilobytes SizeUnit = 'k'
	UnitMegabytes SizeUnit = 'M'
	UnitGigabytes SizeUnit = 'G'
)

func (u SizeUnit) multiplier() int64 {
	switch u {
	case UnitKilobytes:
		return 1 << 10
	case UnitMegabytes:
		return 1 << 20
	case UnitGigabytes:
		return 1 << 30
	default:
		return 1
	}
}

// exactTolerance is the half-unit tolerance band used for SizeExact
// matches, pinned to original_source/src/filters/filesize.rs.
func (u SizeUnit) exactTolerance() int64 {
	switch u {
	case UnitKilobytes:
		return 512
	case UnitMegabytes:
		return 524288
	case UnitGigabytes:
		return 536870912
	default:
		return 0
	}
}

// SizeFilter matches an entry's size against comparison/value/unit.
type SizeFilter struct {
	Comparison SizeComparison
	Value      int64
	Unit       SizeUnit
	raw        string
}

// ParseSizeFilter parses the grammar [+-]?N[ckMG]. Empty input or a
// missing/unknown unit fails with InvalidFilter.
func ParseSizeFilter(s string) (*SizeFilter, error) {
	raw := s
	if s == "" {
		return nil, invalidFilter("size", raw, fmt.Errorf("empty size filter"))
	}

	comparison := SizeExact
	switch s[0] {
	case '+':
		comparison, s = SizeGreater, s[1:]
	case '-':
		comparison, s = SizeLess, s[1:]
	}

	if s == "" {
		return nil, invalidFilter("size", raw, fmt.Errorf("missing value and unit"))
	}

	unit := SizeUnit(s[len(s)-1])
	switch unit {
	case UnitBytes, UnitKilobytes, UnitMegabytes, UnitGigabytes:
	default:
		return nil, invalidFilter("size", raw, fmt.Errorf("invalid size unit %q, use c, k, M, or G", s[len(s)-1:]))
	}

	valueStr := s[:len(s)-1]
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil || value < 0 {
		return nil, invalidFilter("size", raw, fmt.Errorf("invalid non-negative integer %q", valueStr))
	}

	return &SizeFilter{Comparison: comparison, Value: value, Unit: unit, raw: raw}, nil
}

// ToBytes resolves Value*Unit into a byte count.
func (f *SizeFilter) ToBytes() int64 { return f.Value * f.Unit.multiplier() }

// Match reports whether size satisfies the filter.
func (f *SizeFilter) Match(size int64) bool {
	target := f.ToBytes()

	switch f.Comparison {
	case SizeLess:
		return size < target
	case SizeGreater:
		return size > target
	default: // SizeExact
		tolerance := f.Unit.exactTolerance()
		lower := target - tolerance
		if lower < 0 {
			lower = 0
		}
		upper := target + tolerance
		return size >= lower && size <= upper
	}
}

func (f *SizeFilter) String() string { return f.raw }
