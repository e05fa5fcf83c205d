// Package errors provides error annotation with structured logging attributes.
//
// It re-exports the standard library helpers so that callers only need a
// single errors import.
package errors

import (
	stderrors "errors"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
)

// AnnotatedError carries a message, an optional cause, structured logging
// attributes, and the source location where it was created.
type AnnotatedError struct {
	msg    string
	cause  error
	attrs  []slog.Attr
	source string
}

// New returns an error that formats as the given text. Use NewSentinel for
// errors that should carry a source location.
func New(text string) error {
	return stderrors.New(text)
}

// NewSentinel creates a root error with the caller's source location attached.
func NewSentinel(text string) error {
	return &AnnotatedError{msg: text, source: callerSource()}
}

// Wrap annotates err with a message and optional [slog.Attr] that are surfaced
// by SlogError when the error is logged.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &AnnotatedError{msg: msg, cause: err, attrs: attrs, source: callerSource()}
}

func (e *AnnotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *AnnotatedError) Unwrap() error {
	return e.cause
}

// callerSource resolves the file:line of the caller of NewSentinel or Wrap.
// The skip count jumps over callerSource and the constructor itself.
func callerSource() string {
	const skip = 2
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}
	return file + ":" + strconv.Itoa(line)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// SlogError converts an error into a [slog.Attr] with the error message, the
// source location of the innermost annotation, and all annotation attributes
// collected from the error tree.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	var (
		annotations []slog.Attr
		source      string
	)
	collectAnnotations(err, &annotations, &source)

	args := []any{slog.String("message", err.Error())}
	if source != "" {
		args = append(args, slog.String("source", source))
	}
	if len(annotations) > 0 {
		groupArgs := make([]any, 0, len(annotations))
		for _, attr := range annotations {
			groupArgs = append(groupArgs, attr)
		}
		args = append(args, slog.Group("annotations", groupArgs...))
	}

	return slog.Group("error", args...)
}

// collectAnnotations walks the error tree gathering attributes. The source of
// the deepest AnnotatedError wins since it is closest to the root cause.
func collectAnnotations(err error, annotations *[]slog.Attr, source *string) {
	if err == nil {
		return
	}

	if annotated, ok := err.(*AnnotatedError); ok { //nolint:errorlint // walking the tree manually.
		*annotations = append(*annotations, annotated.attrs...)
		if annotated.source != "" {
			*source = annotated.source
		}
		collectAnnotations(annotated.cause, annotations, source)
		return
	}

	switch unwrappable := err.(type) { //nolint:errorlint // walking the tree manually.
	case interface{ Unwrap() error }:
		collectAnnotations(unwrappable.Unwrap(), annotations, source)
	case interface{ Unwrap() []error }:
		for _, joined := range unwrappable.Unwrap() {
			collectAnnotations(joined, annotations, source)
		}
	}
}
