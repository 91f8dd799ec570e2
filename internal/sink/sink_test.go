package sink

import "testing"

func TestEmitAndDrain(t *testing.T) {
	s := New(4)
	s.Emit("/a")
	s.Emit("/b")
	s.Close()

	var got []string
	for p := range s.Results() {
		got = append(got, p)
	}
	if len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Fatalf("got %v, want [/a /b]", got)
	}
}

func TestNewClampsNonPositiveCapacity(t *testing.T) {
	s := New(0)
	s.Emit("/only")
	s.Close()
	var got []string
	for p := range s.Results() {
		got = append(got, p)
	}
	if len(got) != 1 || got[0] != "/only" {
		t.Fatalf("got %v, want [/only]", got)
	}
}
