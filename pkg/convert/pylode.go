package convert

import (
	"context"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// pyLODECmd is the CLI tool from the Python "pyLODE" package. It only ever
// produces HTML documentation pages.
const pyLODECmd = "pylode"

type pyLODEConverter struct{}

func newPyLODE() Converter { return pyLODEConverter{} }

func (pyLODEConverter) Info() Info {
	return Info{Quality: QualityData, Priority: PriorityMid, Kind: KindExternalCLI, Name: "pyLODE"}
}

func (pyLODEConverter) Available() bool { return cliAvailable(pyLODECmd) }

func (pyLODEConverter) Supports(from, to format.Format) bool {
	if to != format.Html {
		return false
	}
	_, ok := toRdflibFormat(from)
	return ok
}

func (pyLODEConverter) Convert(ctx context.Context, from, to cache.OntologyFile) error {
	args := []string{
		"--sort",
		"--css", "true",
		"--profile", "ontpub",
		"--outputfile", to.Path,
		from.Path,
	}
	return runCLI(ctx, pyLODECmd, "RDF to HTML conversion", args)
}
