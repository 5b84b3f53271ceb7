// Package billnumber generates human-readable bill numbers.
//
// Numbers follow the shop's historical format: a fixed prefix plus the last
// six digits of a millisecond timestamp (e.g. "GZ831042"). Timestamps alone
// can collide, so generation verifies the candidate against the numbers
// already in use and bumps the suffix until it is unique.
package billnumber

import (
	"fmt"
	"time"
)

// DefaultPrefix is the historical bill number prefix.
const DefaultPrefix = "GZ"

const suffixDigits = 6

// Generator produces bill numbers unique against a caller-supplied set of
// numbers already in use.
type Generator struct {
	prefix string
	now    func() time.Time
}

// New creates a generator with the given prefix. An empty prefix falls back
// to DefaultPrefix.
func New(prefix string) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{prefix: prefix, now: time.Now}
}

// NewWithClock creates a generator with a fixed clock, for tests.
func NewWithClock(prefix string, now func() time.Time) *Generator {
	g := New(prefix)
	g.now = now
	return g
}

// Next returns a bill number not present in inUse. On a collision the
// numeric suffix is incremented (mod 10^6) until a free number is found.
func (g *Generator) Next(inUse map[string]bool) string {
	mod := int64(1)
	for i := 0; i < suffixDigits; i++ {
		mod *= 10
	}

	suffix := g.now().UnixMilli() % mod
	for i := int64(0); i < mod; i++ {
		candidate := fmt.Sprintf("%s%0*d", g.prefix, suffixDigits, (suffix+i)%mod)
		if !inUse[candidate] {
			return candidate
		}
	}
	// Every suffix is taken; fall back to a longer, nanosecond-based number.
	return fmt.Sprintf("%s%d", g.prefix, g.now().UnixNano())
}
