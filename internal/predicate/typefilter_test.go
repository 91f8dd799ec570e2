package predicate

import (
	"testing"

	"github.com/gofinch/parafind/internal/sysmeta"
)

func TestParseTypeFilter(t *testing.T) {
	cases := map[string]TypeFilter{
		"f": TypeFile, "file": TypeFile,
		"d": TypeDir, "dir": TypeDir,
		"l": TypeSymlink, "link": TypeSymlink, "symlink": TypeSymlink,
		"any": TypeAny,
	}
	for in, want := range cases {
		got, err := ParseTypeFilter(in)
		if err != nil {
			t.Fatalf("ParseTypeFilter(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseTypeFilter(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseTypeFilter("F"); err == nil {
		t.Error("short form is case-sensitive, 'F' should fail")
	}
}

func TestTypeFilterMatchUsesLstatView(t *testing.T) {
	symlink := &sysmeta.EntryMeta{IsSymlink: true, IsDir: false, IsRegular: false}
	if !TypeSymlink.Match(symlink) {
		t.Error("symlink type filter should match a symlink entry")
	}
	if TypeDir.Match(symlink) {
		t.Error("a symlink-to-directory must still be classified as symlink, not dir")
	}
}
