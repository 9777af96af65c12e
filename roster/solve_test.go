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

import (
	"testing"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name         string
		in           cmpb.CpSolverStatus
		wantStatus   string
		wantSolver   string
		wantErrKind  Kind
		wantHasError bool
	}{
		{"optimal", cmpb.CpSolverStatus_OPTIMAL, StatusSuccess, solverStatusOptimal, 0, false},
		{"feasible", cmpb.CpSolverStatus_FEASIBLE, StatusFeasible, solverStatusFeasible, 0, false},
		{"infeasible", cmpb.CpSolverStatus_INFEASIBLE, "", "", InfeasibleModel, true},
		{"unknown", cmpb.CpSolverStatus_UNKNOWN, "", "", SolverTimeout, true},
		{"model_invalid", cmpb.CpSolverStatus_MODEL_INVALID, "", "", SolverInternal, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, solverStatus, err := classifyStatus(tc.in)
			if tc.wantHasError {
				if err == nil {
					t.Fatalf("classifyStatus(%v) returned nil error, want Kind %v", tc.in, tc.wantErrKind)
				}
				if err.Kind != tc.wantErrKind {
					t.Errorf("Kind = %v, want %v", err.Kind, tc.wantErrKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("classifyStatus(%v) returned unexpected error %v", tc.in, err)
			}
			if status != tc.wantStatus {
				t.Errorf("status = %q, want %q", status, tc.wantStatus)
			}
			if solverStatus != tc.wantSolver {
				t.Errorf("solverStatus = %q, want %q", solverStatus, tc.wantSolver)
			}
		})
	}
}
