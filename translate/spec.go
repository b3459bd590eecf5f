// Public domain.

package translate

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/necam-obs/ingest/fitshdr"
)

// Unit tags the physical unit a raw keyword value carries.  Tagged trivial
// entries are converted to a typed Go value when resolved.
type Unit int

const (
	NoUnit Unit = iota
	Second      // duration in seconds, resolves to time.Duration
	Degree      // angle in degrees, resolves to unit.Angle
	Kelvin      // temperature, resolves to float64 kelvins
	HPa         // pressure, resolves to float64 hectopascals
)

// Keyword is one entry of a trivial map: a direct header keyword copy with
// an optional unit attached.
type Keyword struct {
	Keyword string
	Unit    Unit
}

// DerivedFunc computes one schema field from the bound translation.  It may
// resolve other fields through the translation; such lookups are memoized.
type DerivedFunc func(*Translation) (interface{}, error)

// Spec is an instrument's declarative translation capability set.  Field
// resolution order is Derived, then Trivial, then Const.
type Spec struct {
	// Name of the translation, e.g. the instrument's public name.
	Name string

	// SupportedInstrument is the raw INSTRUME token the instrument writes.
	SupportedInstrument string

	// CanTranslate reports whether this spec applies to the header.  It
	// must not fail on foreign headers; a header it cannot place is
	// simply not its own.
	CanTranslate func(fitshdr.Header) bool

	// Const maps fields to fixed values.  A nil value declares the field
	// known to be unobtainable from this instrument's headers.
	Const map[Field]interface{}

	// Trivial maps fields to direct keyword copies.
	Trivial map[Field]Keyword

	// Derived maps fields to computed accessors.
	Derived map[Field]DerivedFunc
}

// ErrNoTranslator is returned by Select when no registered spec recognizes
// a header.
var ErrNoTranslator = errors.New("translate: no registered translator recognizes header")

// UnknownFieldError reports a field the translator does not resolve in any
// of its three maps.
type UnknownFieldError struct {
	Translator string
	Field      Field
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("translate: %s does not resolve field %s",
		e.Translator, e.Field)
}

var (
	regMu sync.RWMutex
	specs []*Spec
)

// Register adds a spec to the global registry consulted by Select.
// Instrument packages register themselves from init, so a blank import of
// the instrument package is enough to make it selectable.
func Register(s *Spec) {
	regMu.Lock()
	defer regMu.Unlock()
	specs = append(specs, s)
}

// Select returns the first registered spec whose recognition predicate
// accepts the header, or ErrNoTranslator.
func Select(h fitshdr.Header) (*Spec, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, s := range specs {
		if s.CanTranslate(h) {
			return s, nil
		}
	}
	return nil, ErrNoTranslator
}
