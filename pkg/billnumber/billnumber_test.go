package billnumber

import (
	"strings"
	"testing"
	"time"
)

func TestNextFormat(t *testing.T) {
	clock := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	g := NewWithClock("GZ", func() time.Time { return clock })

	number := g.Next(nil)
	if !strings.HasPrefix(number, "GZ") {
		t.Errorf("number %q missing prefix", number)
	}
	if len(number) != len("GZ")+6 {
		t.Errorf("number %q length = %d, want %d", number, len(number), len("GZ")+6)
	}
}

func TestNextBumpsOnCollision(t *testing.T) {
	clock := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	g := NewWithClock("GZ", func() time.Time { return clock })

	first := g.Next(nil)
	inUse := map[string]bool{first: true}

	second := g.Next(inUse)
	if second == first {
		t.Errorf("collision not avoided: %q", second)
	}
	if !strings.HasPrefix(second, "GZ") {
		t.Errorf("bumped number %q missing prefix", second)
	}

	// A run of takes never repeats within the set.
	for i := 0; i < 100; i++ {
		n := g.Next(inUse)
		if inUse[n] {
			t.Fatalf("duplicate number %q on iteration %d", n, i)
		}
		inUse[n] = true
	}
}

func TestEmptyPrefixFallsBack(t *testing.T) {
	g := New("")
	if !strings.HasPrefix(g.Next(nil), DefaultPrefix) {
		t.Errorf("default prefix not applied")
	}
}
