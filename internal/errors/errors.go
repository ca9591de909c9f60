// Package errors provides the error taxonomy for the skeleton CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a failure. Every kind aborts the run.
type Kind int

const (
	// KindUnknown is used for errors that did not originate in this module.
	KindUnknown Kind = iota

	// KindConfigRead indicates the configuration file could not be read.
	KindConfigRead

	// KindConfigParse indicates the configuration is not a JSON object.
	KindConfigParse

	// KindConfigValidation indicates a required configuration field is missing or invalid.
	KindConfigValidation

	// KindPathNotFound indicates the templates path or template root does not exist.
	KindPathNotFound

	// KindDirectoryAccess indicates a template directory could not be read.
	KindDirectoryAccess

	// KindEncoding indicates a template file is not valid UTF-8.
	KindEncoding

	// KindFilesystemWrite indicates an output directory or file could not be written.
	KindFilesystemWrite

	// KindTemplateRender indicates malformed placeholder syntax or an engine failure.
	KindTemplateRender
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrConfigRead       = errors.New("config read error")
	ErrConfigParse      = errors.New("config parse error")
	ErrConfigValidation = errors.New("config validation error")
	ErrPathNotFound     = errors.New("path not found")
	ErrDirectoryAccess  = errors.New("directory access error")
	ErrEncoding         = errors.New("encoding error")
	ErrFilesystemWrite  = errors.New("filesystem write error")
	ErrTemplateRender   = errors.New("template render error")
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindConfigRead:
		return "ConfigReadError"
	case KindConfigParse:
		return "ConfigParseError"
	case KindConfigValidation:
		return "ConfigValidationError"
	case KindPathNotFound:
		return "PathNotFoundError"
	case KindDirectoryAccess:
		return "DirectoryAccessError"
	case KindEncoding:
		return "EncodingError"
	case KindFilesystemWrite:
		return "FilesystemWriteError"
	case KindTemplateRender:
		return "TemplateRenderError"
	default:
		return "UnknownError"
	}
}

// Sentinel returns the sentinel error for the kind, or nil for KindUnknown.
func (k Kind) Sentinel() error {
	switch k {
	case KindConfigRead:
		return ErrConfigRead
	case KindConfigParse:
		return ErrConfigParse
	case KindConfigValidation:
		return ErrConfigValidation
	case KindPathNotFound:
		return ErrPathNotFound
	case KindDirectoryAccess:
		return ErrDirectoryAccess
	case KindEncoding:
		return ErrEncoding
	case KindFilesystemWrite:
		return ErrFilesystemWrite
	case KindTemplateRender:
		return ErrTemplateRender
	default:
		return nil
	}
}

// DetailError captures structured error information.
type DetailError struct {
	// Kind is the error category (required).
	Kind Kind

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Field is the configuration field name for config errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Kind.String())
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Cause != nil {
		b.WriteString("  Cause: ")
		b.WriteString(e.Cause.Error())
		b.WriteString("\n")
	}

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the kind sentinel and the underlying cause.
func (e *DetailError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// New creates a DetailError of the given kind.
func New(kind Kind, message, location string, cause error) *DetailError {
	return &DetailError{
		Kind:     kind,
		Message:  message,
		Location: location,
		Cause:    cause,
	}
}

// NewConfigValidationError creates a validation error naming the offending field.
func NewConfigValidationError(field, location, message string) error {
	return &DetailError{
		Kind:     KindConfigValidation,
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     fmt.Sprintf("Add %q to the configuration file.", field),
	}
}

// NewPathNotFoundError creates a not found error for a resolved path.
func NewPathNotFoundError(message, location, hint string) error {
	return &DetailError{
		Kind:     KindPathNotFound,
		Message:  message,
		Location: location,
		Hint:     hint,
	}
}

// NewTemplateRenderError creates a render error carrying the offending template text.
func NewTemplateRenderError(location, text string, cause error) error {
	return &DetailError{
		Kind:     KindTemplateRender,
		Message:  "rendering template failed",
		Location: location,
		Context:  map[string]string{"Template": truncate(text, 120)},
		Cause:    cause,
	}
}

// KindOf reports the kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.Kind
	}

	for k := KindConfigRead; k <= KindTemplateRender; k++ {
		if errors.Is(err, k.Sentinel()) {
			return k
		}
	}
	return KindUnknown
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
