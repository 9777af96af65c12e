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
	"fmt"

	log "github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"
)

const (
	// StatusSuccess means the solver proved optimality.
	StatusSuccess = "SUCCESS"
	// StatusFeasible means a valid assignment was found but optimality
	// was not proven within the wall-clock budget.
	StatusFeasible = "FEASIBLE"

	solverStatusOptimal  = "OPTIMAL"
	solverStatusFeasible = "FEASIBLE"
)

// Solve runs CP-SAT against bm with a wall-clock budget of
// params.MaxSolveSeconds and classifies the result. The budget is
// advisory: Solve does not interrupt the solver itself, it only reports
// whatever verdict SolveCpModelWithParameters returns.
func Solve(bm *BuiltModel, params Parameters) (*cmpb.CpSolverResponse, string, string, error) {
	m, err := bm.Builder.Model()
	if err != nil {
		return nil, "", "", &Error{Kind: SolverInternal, Reason: "failed to instantiate the CP model", Err: err}
	}

	sp := &sppb.SatParameters{
		MaxTimeInSeconds: proto.Float64(params.MaxSolveSeconds),
	}

	resp, err := cpmodel.SolveCpModelWithParameters(m, sp)
	if err != nil {
		return nil, "", "", &Error{Kind: SolverInternal, Reason: "solver invocation failed", Err: err}
	}

	status, solverStatus, cerr := classifyStatus(resp.GetStatus())
	if cerr != nil {
		log.Errorf("roster: solve returned %v", resp.GetStatus())
		return resp, "", "", cerr
	}
	log.Infof("roster: solve returned status=%s solver_status=%s", status, solverStatus)
	return resp, status, solverStatus, nil
}

// classifyStatus maps a native CpSolverStatus to the package's four-way
// error taxonomy. It is a pure function so the mapping can be tested
// without invoking the solver.
func classifyStatus(st cmpb.CpSolverStatus) (status, solverStatus string, err *Error) {
	switch st {
	case cmpb.CpSolverStatus_OPTIMAL:
		return StatusSuccess, solverStatusOptimal, nil
	case cmpb.CpSolverStatus_FEASIBLE:
		return StatusFeasible, solverStatusFeasible, nil
	case cmpb.CpSolverStatus_INFEASIBLE:
		return "", "", &Error{
			Kind:   InfeasibleModel,
			Reason: "solver proved infeasibility; the likely-tight constraint class is coverage, capacity, or weekly bounds",
		}
	case cmpb.CpSolverStatus_UNKNOWN:
		return "", "", &Error{
			Kind:   SolverTimeout,
			Reason: "solver returned without a feasible solution within the wall-clock budget",
		}
	default:
		return "", "", &Error{
			Kind:   SolverInternal,
			Reason: fmt.Sprintf("solver returned unexpected status %v", st),
		}
	}
}
