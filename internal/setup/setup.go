// Package setup contains the ordered bootstrap pipeline and its driver.
package setup

import (
	"context"
	"fmt"
	"log/slog"
)

// FailureKind categorizes fatal pipeline failures.
type FailureKind string

const (
	// MissingDependency means a required tool is not installed.
	MissingDependency FailureKind = "missing-dependency"
	// DaemonUnreachable means the container daemon did not answer.
	DaemonUnreachable FailureKind = "daemon-unreachable"
	// UserDeclined means the operator declined to continue.
	UserDeclined FailureKind = "user-declined"
	// ConfigWriteFailure means a configuration artifact could not be written.
	ConfigWriteFailure FailureKind = "config-write-failure"
	// BuildFailure means the image build failed.
	BuildFailure FailureKind = "build-failure"
	// StartFailure means the stack could not be started.
	StartFailure FailureKind = "start-failure"
)

// Failure is a categorized fatal error raised by a pipeline step.
type Failure struct {
	Kind FailureKind
	Err  error
}

// Error implements the error interface with a single categorized line.
func (f *Failure) Error() string { return fmt.Sprintf("%s: %v", f.Kind, f.Err) }

// Unwrap exposes the underlying cause for errors.Is/As.
func (f *Failure) Unwrap() error { return f.Err }

// Status is the outcome class of a completed step.
type Status int

const (
	// StatusOK means the step succeeded; the pipeline continues.
	StatusOK Status = iota
	// StatusWarning means the step found a non-fatal problem; the pipeline continues.
	StatusWarning
	// StatusStop means the pipeline ends here successfully.
	StatusStop
	// StatusFatal means the pipeline aborts with the step's error.
	StatusFatal
)

// Result is the outcome of one pipeline step.
type Result struct {
	Status  Status
	Message string
	Err     error
}

// OK returns a success result with an optional message.
func OK(message string) Result {
	return Result{Status: StatusOK, Message: message}
}

// Warn returns a non-fatal warning result.
func Warn(message string, err error) Result {
	return Result{Status: StatusWarning, Message: message, Err: err}
}

// Stop returns a result that ends the pipeline successfully.
func Stop(message string) Result {
	return Result{Status: StatusStop, Message: message}
}

// Fatal returns a result that aborts the pipeline with a categorized failure.
func Fatal(kind FailureKind, err error) Result {
	return Result{Status: StatusFatal, Err: &Failure{Kind: kind, Err: err}}
}

// Step is a named unit of the bootstrap pipeline.
type Step struct {
	Name string
	Run  func(ctx context.Context) Result
}

// Pipeline runs steps in order, short-circuiting on the first fatal result.
// Warnings are logged and do not stop execution; a stop result ends the run
// successfully.
type Pipeline struct {
	Logger *slog.Logger
	Steps  []Step
}

// Run executes the pipeline and returns the first fatal failure, if any.
func (p *Pipeline) Run(ctx context.Context) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for _, step := range p.Steps {
		res := step.Run(ctx)
		switch res.Status {
		case StatusOK:
			if res.Message != "" {
				logger.Info(res.Message, "step", step.Name)
			} else {
				logger.Info("step ok", "step", step.Name)
			}
		case StatusWarning:
			logger.Warn(res.Message, "step", step.Name, "error", res.Err)
		case StatusStop:
			logger.Info(res.Message, "step", step.Name)
			return nil
		case StatusFatal:
			logger.Error("step failed", "step", step.Name, "error", res.Err)
			return res.Err
		}
	}
	return nil
}
