package convert

import (
	"context"
	"sort"
	"sync"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// Converter is the capability set every backend implements: a total-order
// [Info] tuple, an availability probe, a static support matrix, and the
// conversion itself.
type Converter interface {
	Info() Info
	Available() bool
	Supports(from, to format.Format) bool
	Convert(ctx context.Context, from, to cache.OntologyFile) error
}

var (
	registryOnce sync.Once
	registry     []Converter
	registered   []Converter
)

// Register adds c to the process-wide converter list. Intended for
// startup-time registration (init functions or main); calling it after the
// registry has been sorted (the first [Select]/[Convert]/[Registry] call)
// has no effect.
func Register(c Converter) {
	registered = append(registered, c)
}

func init() {
	Register(newInProcess())
	Register(newRdfx())
	Register(newRdfConvert())
	Register(newPyLODE())
	Register(newRobot())
}

// Registry returns the sorted, process-wide converter list, building it on
// first use. The sort is ascending by [Info] (best quality/priority first,
// ties broken by kind then name) and happens exactly once.
func Registry() []Converter {
	registryOnce.Do(func() {
		registry = make([]Converter, len(registered))
		copy(registry, registered)
		sort.SliceStable(registry, func(i, j int) bool {
			return registry[i].Info().Less(registry[j].Info())
		})
	})
	return registry
}

// Select returns the highest-ranked available converter supporting
// (from, to):
//
//   - from == to  →  NoConversionRequired
//   - from not machine-readable  →  NonMachineReadableSource
//   - otherwise, the first registry entry with Supports(from,to) &&
//     Available() wins; none matching  →  NoConverter
func Select(from, to format.Format) (Converter, error) {
	return selectAmong(Registry(), from, to)
}

// selectAmong implements Select's algorithm over an explicit, already
// presumed-sorted converter list. Factored out so tests can exercise
// dispatch ordering against fake converters without touching the
// process-wide registry.
func selectAmong(converters []Converter, from, to format.Format) (Converter, error) {
	if from == to {
		return nil, errNoConversionRequired(from)
	}
	if !from.IsMachineReadable() {
		return nil, errNonMachineReadableSource(from)
	}
	for _, c := range converters {
		if c.Supports(from, to) && c.Available() {
			return c, nil
		}
	}
	return nil, errNoConverter(from, to)
}

// Convert selects a converter for (from.Format, to.Format) and invokes it.
func Convert(ctx context.Context, from, to cache.OntologyFile) (Info, error) {
	c, err := Select(from.Format, to.Format)
	if err != nil {
		return Info{}, err
	}
	if err := c.Convert(ctx, from, to); err != nil {
		return Info{}, err
	}
	return c.Info(), nil
}
