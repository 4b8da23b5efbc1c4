// Package errors provides error handling for php-class-gen.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, error wrapping, and user-facing hints, plus the sentinel errors
// shared across the scaffolding pipeline.
//
// Usage:
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check sentinels
//	if errors.Is(err, errors.ErrConfig) {
//	    // bad configuration, nothing was generated
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for the generation pipeline.
// Use with errors.Is() for type-safe checks; wrap with errors.Wrap() to
// add context while preserving the type.
var (
	// ErrConfig indicates invalid configuration (namespace mappings,
	// composer.json, phpgen.yaml). Always detected before any artifact
	// is built.
	ErrConfig = New("invalid configuration")

	// ErrFatalBatch indicates a project build aborted because one of its
	// blueprints failed. No partial output is written.
	ErrFatalBatch = New("fatal batch error")
)

// IsConfigError checks if an error is or wraps ErrConfig.
func IsConfigError(err error) bool {
	return err != nil && Is(err, ErrConfig)
}

// IsFatalBatchError checks if an error is or wraps ErrFatalBatch.
func IsFatalBatchError(err error) bool {
	return err != nil && Is(err, ErrFatalBatch)
}

// NewConfigError creates a configuration error with a formatted message.
func NewConfigError(format string, args ...interface{}) error {
	return Wrap(ErrConfig, Newf(format, args...).Error())
}

// NewFatalBatchError creates a fatal batch error identifying the offending key.
func NewFatalBatchError(key string, cause error) error {
	if cause == nil {
		return Wrapf(ErrFatalBatch, "blueprint %q", key)
	}
	return Wrapf(ErrFatalBatch, "blueprint %q: %v", key, cause)
}
