package plectrum

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds of Load and Parse functions.
var (
	// ErrDataSource is returned when the data source could not produce its table.
	ErrDataSource = errors.New("plectrum: data source failure")

	// ErrNotDefinedInCode is returned when the external table holds a label
	// that no variant is bound to.
	ErrNotDefinedInCode = errors.New("plectrum: value present in data, not defined in code")

	// ErrMissingFromData is returned when a variant's label has no row in the
	// external table.
	ErrMissingFromData = errors.New("plectrum: value defined in code, missing from data")

	// ErrUnknownLabel is returned (or panicked with) when a label is not bound
	// to any variant.
	ErrUnknownLabel = errors.New("plectrum: unknown label")
)

// DataSourceError wraps a failure reported by a DataSource.
type DataSourceError struct {
	Message string
	Cause   error
}

// Error returns the error string.
func (e *DataSourceError) Error() string {
	return "plectrum: data source: " + e.Message
}

// Unwrap returns the underlying error.
func (e *DataSourceError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches DataSourceError.
// This allows errors.Is(err, ErrDataSource) to return true.
func (e *DataSourceError) Is(err error) bool {
	return err == ErrDataSource
}

// NewDataSourceError returns a new DataSourceError wrapping cause.
func NewDataSourceError(cause error) *DataSourceError {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	return &DataSourceError{Message: msg, Cause: cause}
}

// IsDataSource returns true if the error is a DataSourceError.
func IsDataSource(err error) bool {
	if err == nil {
		return false
	}
	var e *DataSourceError
	return errors.As(err, &e) || errors.Is(err, ErrDataSource)
}

// NotDefinedInCodeError lists the labels present in the external table that
// no variant of the enumeration is bound to.
type NotDefinedInCodeError struct {
	Enum   string
	Labels []string
}

// Error returns the error string.
func (e *NotDefinedInCodeError) Error() string {
	return fmt.Sprintf("plectrum: %s: value present in data, not defined in code: %s", e.Enum, quote(e.Labels))
}

// Is reports whether the target error matches NotDefinedInCodeError.
func (e *NotDefinedInCodeError) Is(err error) bool {
	return err == ErrNotDefinedInCode
}

// IsNotDefinedInCode returns true if the error is a NotDefinedInCodeError.
func IsNotDefinedInCode(err error) bool {
	if err == nil {
		return false
	}
	var e *NotDefinedInCodeError
	return errors.As(err, &e) || errors.Is(err, ErrNotDefinedInCode)
}

// MissingFromDataError lists the bound labels that have no row in the
// external table.
type MissingFromDataError struct {
	Enum   string
	Labels []string
}

// Error returns the error string.
func (e *MissingFromDataError) Error() string {
	return fmt.Sprintf("plectrum: %s: value defined in code, missing from data: %s", e.Enum, quote(e.Labels))
}

// Is reports whether the target error matches MissingFromDataError.
func (e *MissingFromDataError) Is(err error) bool {
	return err == ErrMissingFromData
}

// IsMissingFromData returns true if the error is a MissingFromDataError.
func IsMissingFromData(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingFromDataError
	return errors.As(err, &e) || errors.Is(err, ErrMissingFromData)
}

// UnknownLabelError is returned by generated Parse functions and used as the
// panic value of generated FromValue methods.
type UnknownLabelError struct {
	Enum  string
	Label string
}

// Error returns the error string.
func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("plectrum: unknown %s label %q", e.Enum, e.Label)
}

// Is reports whether the target error matches UnknownLabelError.
func (e *UnknownLabelError) Is(err error) bool {
	return err == ErrUnknownLabel
}

// NewUnknownLabelError returns a new UnknownLabelError.
func NewUnknownLabelError(enum, label string) *UnknownLabelError {
	return &UnknownLabelError{Enum: enum, Label: label}
}

// IsUnknownLabel returns true if the error is an UnknownLabelError.
func IsUnknownLabel(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownLabelError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownLabel)
}

func quote(labels []string) string {
	q := make([]string, len(labels))
	for i, l := range labels {
		q[i] = fmt.Sprintf("%q", l)
	}
	return strings.Join(q, ", ")
}
