package predicate

import "testing"

func TestSizeFilterToBytes(t *testing.T) {
	cases := map[string]int64{
		"1M": 1048576,
		"1k": 1024,
		"1G": 1073741824,
		"5c": 5,
	}
	for in, want := range cases {
		f, err := ParseSizeFilter(in)
		if err != nil {
			t.Fatalf("ParseSizeFilter(%q): %v", in, err)
		}
		if got := f.ToBytes(); got != want {
			t.Errorf("ParseSizeFilter(%q).ToBytes() = %d, want %d", in, got, want)
		}
	}
}

func TestSizeFilterMatch(t *testing.T) {
	// empty.txt (0B), small.txt (1024B), huge.txt (5MiB)
	const empty, small, huge = 0, 1024, 5 * 1 << 20

	lessThan2k, err := ParseSizeFilter("-2k")
	if err != nil {
		t.Fatal(err)
	}
	if !lessThan2k.Match(empty) || !lessThan2k.Match(small) || lessThan2k.Match(huge) {
		t.Errorf("-2k should match {empty, small}, not huge")
	}

	exactly1k, err := ParseSizeFilter("1k")
	if err != nil {
		t.Fatal(err)
	}
	if exactly1k.Match(empty) || !exactly1k.Match(small) || exactly1k.Match(huge) {
		t.Errorf("1k should match only small")
	}

	moreThan2M, err := ParseSizeFilter("+2M")
	if err != nil {
		t.Fatal(err)
	}
	if moreThan2M.Match(empty) || moreThan2M.Match(small) || !moreThan2M.Match(huge) {
		t.Errorf("+2M should match only huge")
	}
}

func TestSizeFilterParseErrors(t *testing.T) {
	for _, in := range []string{"", "5", "5x", "-", "+", "abc"} {
		if _, err := ParseSizeFilter(in); err == nil {
			t.Errorf("ParseSizeFilter(%q) should fail", in)
		}
	}
}
