package accel

import (
	"fmt"

	"golang.org/x/sys/cpu"

	"github.com/coregx/accel/shufti"
)

// hasWideVector reports whether the host has vector units wide enough that
// bitmap classification keeps outrunning byte-wise scanning at high stop
// densities. The cpu package declares its feature flags on every GOARCH, so
// no build tags are needed; off-architecture flags read false.
var hasWideVector = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

const (
	// defaultMaxStopCharsWide is the Bitmap density limit on hosts with
	// 256-bit vector units (AVX2, ASIMD pairs).
	defaultMaxStopCharsWide = 160

	// defaultMaxStopCharsNarrow is the Bitmap density limit elsewhere.
	defaultMaxStopCharsNarrow = 96

	// defaultDoubleFirstLimit caps wildcard entries in the double tables.
	// Wildcard entries stop on a lone byte, so more than a couple erases
	// the benefit of requiring two bytes of context.
	defaultDoubleFirstLimit = 2
)

// Config carries the tuning constants of scheme selection.
//
// The zero value is valid and maximally conservative: it disables the
// ClassTable-backed double scheme and the Bitmap scheme (their limits read
// as zero) but still yields red tape, exact and fold schemes. Selection
// honors whatever limits it is given; Validate catches values the table
// builders cannot support.
type Config struct {
	// MaxStopChars bounds how many distinct stop bytes the Bitmap scheme
	// may carry. Beyond that, stops are frequent enough that skipping
	// cannot outrun plain byte-wise scanning, and selection declines.
	//
	// Default: 160 with wide vector units, 96 otherwise.
	MaxStopChars int

	// DoubleEntryLimit bounds the combined entry count (wildcard first
	// bytes plus exact pairs) of the DoubleClassTable scheme. Must not
	// exceed shufti.MaxDoubleEntries, the bucket capacity of the tables.
	//
	// Default: shufti.MaxDoubleEntries (8).
	DoubleEntryLimit int

	// DoubleFirstLimit bounds how many wildcard first bytes the
	// DoubleClassTable scheme may carry.
	//
	// Default: 2.
	DoubleFirstLimit int
}

// DefaultConfig returns the calibrated selection defaults. MaxStopChars is
// picked by host vector width; the pair-table limits carry the tuning the
// scheme family has shipped with.
func DefaultConfig() Config {
	maxStop := defaultMaxStopCharsNarrow
	if hasWideVector {
		maxStop = defaultMaxStopCharsWide
	}
	return Config{
		MaxStopChars:     maxStop,
		DoubleEntryLimit: shufti.MaxDoubleEntries,
		DoubleFirstLimit: defaultDoubleFirstLimit,
	}
}

// WithMaxStopChars returns a copy of the config with MaxStopChars set to n.
func (c Config) WithMaxStopChars(n int) Config {
	c.MaxStopChars = n
	return c
}

// WithDoubleEntryLimit returns a copy of the config with DoubleEntryLimit
// set to n.
func (c Config) WithDoubleEntryLimit(n int) Config {
	c.DoubleEntryLimit = n
	return c
}

// WithDoubleFirstLimit returns a copy of the config with DoubleFirstLimit
// set to n.
func (c Config) WithDoubleFirstLimit(n int) Config {
	c.DoubleFirstLimit = n
	return c
}

// Validate checks the configuration for values selection cannot honor.
func (c *Config) Validate() error {
	if c.MaxStopChars < 0 {
		return &ConfigError{Field: "MaxStopChars", Message: "must be non-negative"}
	}
	if c.DoubleEntryLimit < 0 {
		return &ConfigError{Field: "DoubleEntryLimit", Message: "must be non-negative"}
	}
	if c.DoubleEntryLimit > shufti.MaxDoubleEntries {
		return &ConfigError{
			Field:   "DoubleEntryLimit",
			Message: fmt.Sprintf("exceeds the double table capacity of %d", shufti.MaxDoubleEntries),
		}
	}
	if c.DoubleFirstLimit < 0 {
		return &ConfigError{Field: "DoubleFirstLimit", Message: "must be non-negative"}
	}
	return nil
}
