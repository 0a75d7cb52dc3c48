package convert

import (
	"context"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// rdfConvertCmd is the CLI tool shipped by the Python "rdftools" package.
const rdfConvertCmd = "rdf-convert"

type rdfConvertConverter struct{}

func newRdfConvert() Converter { return rdfConvertConverter{} }

func (rdfConvertConverter) Info() Info {
	return Info{Quality: QualityData, Priority: PriorityMid, Kind: KindExternalCLI, Name: "rdf-convert"}
}

func (rdfConvertConverter) Available() bool { return cliAvailable(rdfConvertCmd) }

// Supports everything expressible as an rdflib format name — the widest
// coverage of any backend, but the lowest quality tier.
func (rdfConvertConverter) Supports(from, to format.Format) bool {
	_, fromOK := toRdflibFormat(from)
	_, toOK := toRdflibFormat(to)
	return fromOK && toOK
}

func (rdfConvertConverter) Convert(ctx context.Context, from, to cache.OntologyFile) error {
	fromName, ok := toRdflibFormat(from.Format)
	if !ok {
		return errNoConverter(from.Format, to.Format)
	}
	toName, ok := toRdflibFormat(to.Format)
	if !ok {
		return errNoConverter(from.Format, to.Format)
	}
	args := []string{
		"--input", from.Path,
		"--output", to.Path,
		"--read", fromName,
		"--write", toName,
	}
	return runCLI(ctx, rdfConvertCmd, "RDF format conversion (from/with pkg: 'rdftools')", args)
}
