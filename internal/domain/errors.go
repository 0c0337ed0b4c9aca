package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// MissingParameterErr represents a required tool parameter that was not supplied.
type MissingParameterErr struct {
	domainErr
	Parameter string
}

// NewMissingParameterErr creates a new MissingParameterErr for the given parameter name.
func NewMissingParameterErr(parameter string) *MissingParameterErr {
	return &MissingParameterErr{
		domainErr: domainErr{message: fmt.Sprintf("missing required parameter '%s'", parameter)},
		Parameter: parameter,
	}
}

// ConfigurationErr represents an invalid agent or tool configuration detected at construction time.
type ConfigurationErr struct {
	domainErr
}

// NewConfigurationErr creates a new ConfigurationErr with the given message.
func NewConfigurationErr(message string) *ConfigurationErr {
	return &ConfigurationErr{
		domainErr: domainErr{message: message},
	}
}

// DownstreamErr represents a failure reported by an external collaborator
// (ticket tracker, filesystem, language model).
type DownstreamErr struct {
	domainErr
	cause error
}

// NewDownstreamErr creates a new DownstreamErr wrapping cause.
func NewDownstreamErr(message string, cause error) *DownstreamErr {
	msg := message
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", message, cause)
	}
	return &DownstreamErr{
		domainErr: domainErr{message: msg},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *DownstreamErr) Unwrap() error {
	return e.cause
}
