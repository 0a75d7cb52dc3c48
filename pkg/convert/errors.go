package convert

import (
	"github.com/ontoproxy/ontoproxy/pkg/crex"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// ConversionErrorKind classifies why dispatch or a converter invocation
// failed.
type ConversionErrorKind string

const (
	NonMachineReadableSource ConversionErrorKind = "non_machine_readable_source"
	NoConverter              ConversionErrorKind = "no_converter"
	NoConversionRequired     ConversionErrorKind = "no_conversion_required"
	ExtCmdFailedToInvoke     ConversionErrorKind = "ext_cmd_failed_to_invoke"
	ExtCmdUnsuccessful       ConversionErrorKind = "ext_cmd_unsuccessful"
	SyntaxError              ConversionErrorKind = "syntax_error"
	IoError                  ConversionErrorKind = "io_error"
)

const detailKind = "kind"

func errNonMachineReadableSource(from format.Format) error {
	return crex.UserError(
		"source format is not machine-readable",
		from.HumanName()+" cannot be a conversion source",
	).
		Detail(detailKind, NonMachineReadableSource).
		Detail("from", from).
		Err()
}

func errNoConverter(from, to format.Format) error {
	return crex.SystemError(
		"no available converter supports this conversion",
		from.HumanName()+" to "+to.HumanName(),
	).
		Detail(detailKind, NoConverter).
		Detail("from", from).
		Detail("to", to).
		Err()
}

// errNoConversionRequired is returned by Select when from == to. In normal
// operation the orchestrator's direct cache-hit check always intercepts
// identical formats before dispatch is reached; a caller that observes
// this error outside a test is a bug.
func errNoConversionRequired(from format.Format) error {
	return crex.ProgrammingError(
		"input and output formats are identical",
		"try copying the file instead of converting it",
	).
		Detail(detailKind, NoConversionRequired).
		Detail("from", from).
		Detail("to", from).
		Err()
}

func errExtCmdFailedToInvoke(cmd, task string, cause error) error {
	return crex.SystemError("failed to run external converter", cause.Error()).
		Detail(detailKind, ExtCmdFailedToInvoke).
		Detail("cmd", cmd).
		Detail("task", task).
		Cause(cause).
		Err()
}

func errExtCmdUnsuccessful(cmd, task string, exitCode int, stderr string) error {
	return crex.SystemError(
		"external converter exited with an error",
		"cmd="+cmd+" task="+task,
	).
		Detail(detailKind, ExtCmdUnsuccessful).
		Detail("cmd", cmd).
		Detail("task", task).
		Detail("exit_code", exitCode).
		Detail("stderr", stderr).
		Fallback("see captured stderr for the tool's own diagnostic").
		Err()
}

func errSyntax(msg string) error {
	return crex.UserError("the input file was not syntactically valid", msg).
		Detail(detailKind, SyntaxError).
		Err()
}

func errIO(description string, cause error) error {
	return crex.SystemError(description, cause.Error()).
		Detail(detailKind, IoError).
		Cause(cause).
		Err()
}

// KindOf extracts the [ConversionErrorKind] from an error returned by this
// package. Returns false for any other error, including nil.
func KindOf(err error) (ConversionErrorKind, bool) {
	ce, ok := err.(*crex.Error)
	if !ok {
		return "", false
	}
	v, ok := ce.Detail(detailKind)
	if !ok {
		return "", false
	}
	kind, ok := v.(ConversionErrorKind)
	return kind, ok
}
