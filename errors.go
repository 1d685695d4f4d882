package frontkit

import "fmt"

// FileError indicates a failure reading or writing a file.
type FileError struct {
	Path  string
	Op    string // "read", "write", "stat"
	Cause error
}

func (e *FileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s %s", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

// ConfigError indicates an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ProcessorError indicates a content processing failure (parse error, etc.).
type ProcessorError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to process
}

func (e *ProcessorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("processor error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("processor error (%s): %s", e.ContentType, e.Message)
}

func (e *ProcessorError) Unwrap() error {
	return e.Cause
}

// StepError records a fault raised inside a rewrite step.
type StepError struct {
	Step  string
	Path  string
	Cause error
}

func (e *StepError) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("rewrite %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("rewrite %s: step %s: %v", e.Path, e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}
