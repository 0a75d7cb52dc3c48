package convert

import (
	"context"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// rdfxCmd is the CLI tool shipped by the Python "rdflib-wrapper" package.
const rdfxCmd = "rdfx"

type rdfxConverter struct{}

func newRdfx() Converter { return rdfxConverter{} }

func (rdfxConverter) Info() Info {
	return Info{Quality: QualityData, Priority: PriorityLow, Kind: KindExternalCLI, Name: "rdfx"}
}

func (rdfxConverter) Available() bool { return cliAvailable(rdfxCmd) }

// rdfxSupportsFormat reports rdfx's narrower coverage within the rdflib format family:
// N3, JSON-LD, N-Triples, OWL/XML, RDF/XML, Turtle.
func rdfxSupportsFormat(f format.Format) bool {
	switch f {
	case format.N3, format.JsonLd, format.NTriples, format.OwlXml, format.RdfXml, format.Turtle:
		return true
	default:
		return false
	}
}

func (rdfxConverter) Supports(from, to format.Format) bool {
	return rdfxSupportsFormat(from) && rdfxSupportsFormat(to)
}

func (rdfxConverter) Convert(ctx context.Context, from, to cache.OntologyFile) error {
	toName, ok := toRdflibFormat(to.Format)
	if !ok {
		return errNoConverter(from.Format, to.Format)
	}
	args := []string{"convert", "--format", toName, "--output", to.Path, from.Path}
	return runCLI(ctx, rdfxCmd, "RDF format conversion", args)
}
