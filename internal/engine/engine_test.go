//go:build linux || darwin

package engine

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gofinch/parafind/internal/scanner"
	"github.com/gofinch/parafind/internal/testutil"
)

// buildFixtureTree builds a small directory tree exercising the
// end-to-end scenarios below:
//
//	root/
//	  dir1/test1.txt          dir1/subdir1/test2.log
//	  dir1/subdir2/test3.txt  dir2/test4.log
//	  dir2/subdir1/test5.txt  dir3/subdir1/test6.log
//	  dir3/subdir1/subsubdir1/test7.txt
//	  dir1/link_to_test1.txt         -> dir1/test1.txt
//	  dir2/link_to_subdir1           -> dir2/subdir1
//	  dir3/link_to_test6.log         -> dir3/subdir1/test6.log
func buildFixtureTree(t *testing.T) string {
	t.Helper()
	return testutil.Build(t, []testutil.Entry{
		{Path: "dir1/test1.txt"},
		{Path: "dir1/subdir1/test2.log"},
		{Path: "dir1/subdir2/test3.txt"},
		{Path: "dir2/test4.log"},
		{Path: "dir2/subdir1/test5.txt"},
		{Path: "dir3/subdir1/test6.log"},
		{Path: "dir3/subdir1/subsubdir1/test7.txt"},
		{Path: "dir1/link_to_test1.txt", SymlinkTo: "test1.txt"},
		{Path: "dir2/link_to_subdir1", SymlinkTo: "subdir1"},
		{Path: "dir3/link_to_test6.log", SymlinkTo: "subdir1/test6.log"},
	})
}

func drain(t *testing.T, results <-chan string) []string {
	t.Helper()
	var got []string
	for p := range results {
		got = append(got, filepath.Base(p))
	}
	sort.Strings(got)
	return got
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// testMaxDepth is deep enough to reach every fixture entry (the tree is
// at most 4 levels deep); the CLI's own default of 100 lives in
// cmd/pfind, not here.
const testMaxDepth = 10

func TestScenario1DotLogTypeFileDefaultPolicy(t *testing.T) {
	root := buildFixtureTree(t)
	e, err := New(Options{Dir: root, Pattern: "*.log", Type: "f", MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assertNames(t, drain(t, e.Run()), []string{"test2.log", "test4.log", "test6.log"})
}

func TestScenario2DotLogTypeAnyDefaultPolicy(t *testing.T) {
	root := buildFixtureTree(t)
	e, err := New(Options{Dir: root, Pattern: "*.log", MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assertNames(t, drain(t, e.Run()), []string{"test2.log", "test4.log", "test6.log", "link_to_test6.log"})
}

func TestScenario3SubStarTypeDir(t *testing.T) {
	root := buildFixtureTree(t)
	e, err := New(Options{Dir: root, Pattern: "sub*", Type: "d", MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := drain(t, e.Run())
	assertNames(t, got, []string{"subdir1", "subdir1", "subdir1", "subdir2", "subsubdir1"})
}

func TestScenario4LinkStarTypeSymlink(t *testing.T) {
	root := buildFixtureTree(t)
	e, err := New(Options{Dir: root, Pattern: "link_*", Type: "l", MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := drain(t, e.Run())
	assertNames(t, got, []string{"link_to_test1.txt", "link_to_subdir1", "link_to_test6.log"})
}

func TestScenario5SymlinkSeedCommandFollowsPosixNeverDoesNot(t *testing.T) {
	root := buildFixtureTree(t)
	seed := filepath.Join(root, "dir2", "link_to_subdir1")

	commandEngine, err := New(Options{Dir: seed, Pattern: "test5.txt", Symlinks: scanner.SymlinkCommand, MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New (command): %v", err)
	}
	assertNames(t, drain(t, commandEngine.Run()), []string{"test5.txt"})

	neverEngine, err := New(Options{Dir: seed, Pattern: "test5.txt", Symlinks: scanner.SymlinkNever, MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New (never): %v", err)
	}
	if got := drain(t, neverEngine.Run()); len(got) != 0 {
		t.Fatalf("got %v, want empty result set under -P", got)
	}
}

func TestScenario6SizeFixture(t *testing.T) {
	root := testutil.Build(t, []testutil.Entry{
		{Path: "empty.txt", Size: ""},
		{Path: "small.txt", Size: "1024B"},
		{Path: "huge.txt", Size: "5MiB"},
	})

	lessThan2k, err := New(Options{Dir: root, Pattern: "*", Type: "f", Size: "-2k", MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assertNames(t, drain(t, lessThan2k.Run()), []string{"empty.txt", "small.txt"})

	exactly1k, err := New(Options{Dir: root, Pattern: "*", Type: "f", Size: "1k", MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assertNames(t, drain(t, exactly1k.Run()), []string{"small.txt"})

	moreThan2M, err := New(Options{Dir: root, Pattern: "*", Type: "f", Size: "+2M", MaxDepth: testMaxDepth})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assertNames(t, drain(t, moreThan2M.Run()), []string{"huge.txt"})
}

func TestMaxDepthZeroReturnsAtMostSeedChildren(t *testing.T) {
	root := buildFixtureTree(t)
	e, err := New(Options{Dir: root, Pattern: "*", MaxDepth: 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := drain(t, e.Run())
	assertNames(t, got, []string{"dir1", "dir2", "dir3"})
}

func TestUnreadableRootReportsError(t *testing.T) {
	root := t.TempDir()
	_, err := New(Options{Dir: filepath.Join(root, "does-not-exist"), Pattern: "*"})
	if err == nil {
		t.Fatal("expected an error for a missing root")
	}
	var unreadable *UnreadableRootError
	if !errors.As(err, &unreadable) {
		t.Fatalf("got %T, want *UnreadableRootError", err)
	}
}
