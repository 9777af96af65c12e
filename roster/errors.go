// Copyright 2010-2024 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roster

import "fmt"

// Kind classifies an Error into one of the four taxonomy buckets the
// orchestrator can return. Callers should switch on Kind rather than on
// the message text.
type Kind int

const (
	// InvalidInput means validation failed before any model was built.
	// Non-retryable without changing the offending field.
	InvalidInput Kind = iota
	// InfeasibleModel means the solver proved no assignment exists under
	// the given constraints. Non-retryable without relaxing parameters.
	InfeasibleModel
	// SolverTimeout means the solver returned without a feasible solution
	// inside the wall-clock budget. The caller may retry with a larger
	// budget.
	SolverTimeout
	// SolverInternal means the solver returned an unexpected non-terminal
	// status, or failed to run at all. Fatal for this run.
	SolverInternal
)

// String returns the machine-readable name of the Kind.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InfeasibleModel:
		return "InfeasibleModel"
	case SolverTimeout:
		return "SolverTimeout"
	case SolverInternal:
		return "SolverInternal"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned across the package boundary. It
// carries a stable Kind, the violating Field when applicable, and a
// human-readable Reason. No stack traces are part of the contract.
type Error struct {
	Kind   Kind
	Field  string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap exposes the wrapped solver/library error, if any, to errors.Is
// and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

func invalidInput(field, reason string) *Error {
	return &Error{Kind: InvalidInput, Field: field, Reason: reason}
}
