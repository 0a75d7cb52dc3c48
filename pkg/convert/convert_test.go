package convert

import (
	"context"
	"testing"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// fakeConverter is a minimal [Converter] for dispatch tests; it never
// shells out or touches the filesystem.
type fakeConverter struct {
	info      Info
	available bool
	pairs     map[[2]format.Format]bool
}

func (f fakeConverter) Info() Info       { return f.info }
func (f fakeConverter) Available() bool  { return f.available }
func (f fakeConverter) Supports(from, to format.Format) bool {
	return f.pairs[[2]format.Format{from, to}]
}
func (f fakeConverter) Convert(ctx context.Context, from, to cache.OntologyFile) error {
	return nil
}

func TestSelectNoConversionRequired(t *testing.T) {
	_, err := selectAmong(nil, format.Turtle, format.Turtle)
	kind, ok := KindOf(err)
	if !ok || kind != NoConversionRequired {
		t.Fatalf("want NoConversionRequired, got kind=%v ok=%v err=%v", kind, ok, err)
	}
}

func TestSelectNonMachineReadableSource(t *testing.T) {
	_, err := selectAmong(nil, format.Html, format.Turtle)
	kind, ok := KindOf(err)
	if !ok || kind != NonMachineReadableSource {
		t.Fatalf("want NonMachineReadableSource, got kind=%v ok=%v err=%v", kind, ok, err)
	}
}

func TestSelectNoConverter(t *testing.T) {
	_, err := selectAmong(nil, format.Turtle, format.RdfXml)
	kind, ok := KindOf(err)
	if !ok || kind != NoConverter {
		t.Fatalf("want NoConverter, got kind=%v ok=%v err=%v", kind, ok, err)
	}
}

func TestSelectOrderingPrefersEarlierEntry(t *testing.T) {
	pair := map[[2]format.Format]bool{{format.Turtle, format.RdfXml}: true}
	a := fakeConverter{info: Info{Quality: QualityData, Priority: PriorityHigh, Kind: KindInProcess, Name: "a"}, available: true, pairs: pair}
	b := fakeConverter{info: Info{Quality: QualityData, Priority: PriorityLow, Kind: KindExternalCLI, Name: "b"}, available: true, pairs: pair}

	got, err := selectAmong([]Converter{a, b}, format.Turtle, format.RdfXml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Info().Name != "a" {
		t.Fatalf("got %q, want a (strictly earlier in sort order)", got.Info().Name)
	}
}

func TestSelectSkipsUnavailableConverter(t *testing.T) {
	pair := map[[2]format.Format]bool{{format.Turtle, format.RdfXml}: true}
	unavailable := fakeConverter{info: Info{Quality: QualityData, Priority: PriorityHigh, Kind: KindInProcess, Name: "a"}, available: false, pairs: pair}
	available := fakeConverter{info: Info{Quality: QualityData, Priority: PriorityLow, Kind: KindExternalCLI, Name: "b"}, available: true, pairs: pair}

	got, err := selectAmong([]Converter{unavailable, available}, format.Turtle, format.RdfXml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Info().Name != "b" {
		t.Fatalf("got %q, want b (the only available match)", got.Info().Name)
	}
}

func TestInfoLessTotalOrder(t *testing.T) {
	best := Info{Quality: QualityPreservesComments, Priority: PriorityHigh, Kind: KindInProcess, Name: "z"}
	worst := Info{Quality: QualityData, Priority: PriorityLow, Kind: KindNetworkService, Name: "a"}
	if !best.Less(worst) {
		t.Fatalf("expected %+v to sort before %+v", best, worst)
	}
	if worst.Less(best) {
		t.Fatalf("did not expect %+v to sort before %+v", worst, best)
	}
}

func TestRegistryIsSorted(t *testing.T) {
	reg := Registry()
	for i := 1; i < len(reg); i++ {
		if reg[i].Info().Less(reg[i-1].Info()) {
			t.Fatalf("registry not sorted at index %d: %+v before %+v", i, reg[i-1].Info(), reg[i].Info())
		}
	}
}

func TestInProcessSupportsKnakkFormats(t *testing.T) {
	c := newInProcess()
	if !c.Supports(format.Turtle, format.NTriples) {
		t.Error("expected Turtle -> NTriples to be supported")
	}
	if c.Supports(format.N3, format.Turtle) {
		t.Error("knakk/rdf does not implement N3; expected unsupported")
	}
	if !c.Available() {
		t.Error("in-process converter must always be available")
	}
}

func TestRdfxCoverage(t *testing.T) {
	c := newRdfx()
	if !c.Supports(format.Turtle, format.JsonLd) {
		t.Error("rdfx should support Turtle -> JSON-LD")
	}
	if c.Supports(format.Turtle, format.TriG) {
		t.Error("rdfx should not support TriG")
	}
}

func TestPyLODEOnlyTargetsHTML(t *testing.T) {
	c := newPyLODE()
	if !c.Supports(format.Turtle, format.Html) {
		t.Error("pyLODE should support Turtle -> HTML")
	}
	if c.Supports(format.Turtle, format.JsonLd) {
		t.Error("pyLODE should only ever target HTML")
	}
}

func TestRobotCoverage(t *testing.T) {
	c := newRobot()
	if !c.Supports(format.Turtle, format.Manchester) {
		t.Error("robot should support Turtle -> Manchester")
	}
	if c.Supports(format.Turtle, format.JsonLd) {
		t.Error("robot should not support JSON-LD")
	}
}
