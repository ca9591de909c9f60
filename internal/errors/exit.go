package errors

import "errors"

// Exit codes returned by the skeleton binary.
const (
	// ExitSuccess indicates the run completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates the configuration could not be read, parsed or validated.
	ExitConfigError = 2

	// ExitNotFound indicates the templates path or template root does not exist.
	ExitNotFound = 3

	// ExitRenderError indicates a template could not be decoded or rendered.
	ExitRenderError = 4

	// ExitFilesystemError indicates a template directory could not be read or an output could not be written.
	ExitFilesystemError = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed reports whether the error was already logged by the command layer.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch KindOf(err) {
	case KindConfigRead, KindConfigParse, KindConfigValidation:
		return ExitConfigError
	case KindPathNotFound:
		return ExitNotFound
	case KindEncoding, KindTemplateRender:
		return ExitRenderError
	case KindDirectoryAccess, KindFilesystemWrite:
		return ExitFilesystemError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigError:
		return "Configuration Error"
	case ExitNotFound:
		return "Not Found"
	case ExitRenderError:
		return "Render Error"
	case ExitFilesystemError:
		return "Filesystem Error"
	default:
		return "Unknown"
	}
}
