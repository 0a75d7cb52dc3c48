package convert

import (
	"context"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// robotCmd is the OBO "robot" Java CLI (http://robot.obolibrary.org),
// specifically wired here for Manchester and OWL-Functional syntax, which
// no other backend in this registry can produce.
const robotCmd = "robot"

type robotConverter struct{}

func newRobot() Converter { return robotConverter{} }

func (robotConverter) Info() Info {
	return Info{Quality: QualityData, Priority: PriorityLow, Kind: KindExternalCLI, Name: "robot"}
}

func (robotConverter) Available() bool { return cliAvailable(robotCmd) }

func (robotConverter) Supports(from, to format.Format) bool {
	_, fromOK := toRobotFormat(from)
	_, toOK := toRobotFormat(to)
	return fromOK && toOK
}

func (robotConverter) Convert(ctx context.Context, from, to cache.OntologyFile) error {
	toName, ok := toRobotFormat(to.Format)
	if !ok {
		return errNoConverter(from.Format, to.Format)
	}
	args := []string{
		"convert",
		"--input", from.Path,
		"--format", toName,
		"--output", to.Path,
	}
	return runCLI(ctx, robotCmd, "RDF format conversion", args)
}
