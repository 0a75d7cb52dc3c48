package convert

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// cliAvailable reports whether cmd can be spawned on $PATH. Both a clean
// exit and a non-zero exit from the probe invocation count as "available"
// — only a failure to start the process (not found, permission denied)
// means unavailable.
func cliAvailable(cmd string) bool {
	err := exec.Command(cmd).Run()
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// runCLI invokes cmd with args, capturing stderr for diagnostics. task is a
// human-oriented description used in error messages.
func runCLI(ctx context.Context, cmd, task string, args []string) error {
	c := exec.CommandContext(ctx, cmd, args...)
	var stderr bytes.Buffer
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return errExtCmdUnsuccessful(cmd, task, exitErr.ExitCode(), stderr.String())
		}
		return errExtCmdFailedToInvoke(cmd, task, err)
	}
	return nil
}

// toRdflibFormat maps a [format.Format] to the identifier rdflib-backed
// tools (rdfx, rdf-convert) know it by. Ported from
// original_source/crates/conversion/src/conversion/mod.rs::to_rdflib_format.
func toRdflibFormat(f format.Format) (string, bool) {
	switch f {
	case format.HexTuples:
		return "hext", true
	case format.JsonLd:
		return "json-ld", true
	case format.N3:
		return "n3", true
	case format.NQuads:
		return "nquads", true
	case format.NTriples:
		return "nt", true
	case format.TriG:
		return "trig", true
	case format.RdfXml:
		return "xml", true
	case format.TriX:
		return "trix", true
	case format.Turtle:
		return "turtle", true
	default:
		return "", false
	}
}

// toRobotFormat maps a [format.Format] to the identifier the `robot` CLI
// knows it by. Ported from
// original_source/crates/conversion/src/conversion/robot.rs::to_robot_format.
func toRobotFormat(f format.Format) (string, bool) {
	switch f {
	case format.Manchester:
		return "omn", true
	case format.OwlFunctional:
		return "ofn", true
	case format.OwlXml:
		return "owx", true
	case format.RdfXml:
		return "owl", true
	case format.Turtle:
		return "ttl", true
	default:
		return "", false
	}
}
