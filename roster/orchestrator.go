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
	"time"

	log "github.com/golang/glog"
)

// Generate sequences Normalize -> BuildModel -> Solve -> Extract ->
// ComputeStatistics and assembles the result envelope. overrides may be
// nil. Errors from ApplyOverrides, Normalize and Solve propagate
// unchanged; a BuildModel error is wrapped in an *Error of Kind
// SolverInternal. A FEASIBLE verdict is not an error.
func Generate(employees []Employee, locations []Location, shifts []ShiftTemplate, overrides *Overrides) (*ResultEnvelope, error) {
	start := time.Now()

	params, err := ApplyOverrides(DefaultParameters(), overrides)
	if err != nil {
		return nil, err
	}

	n, err := Normalize(employees, locations, shifts, params, start)
	if err != nil {
		log.Errorf("roster: normalize failed: %v", err)
		return nil, err
	}

	bm, err := BuildModel(n)
	if err != nil {
		log.Errorf("roster: model construction failed: %v", err)
		return nil, &Error{Kind: SolverInternal, Reason: "failed to construct the CP model", Err: err}
	}

	resp, status, solverStatus, err := Solve(bm, params)
	if err != nil {
		return nil, err
	}

	schedule := Extract(n, bm, resp)
	statistics := ComputeStatistics(n, schedule)

	dates := make([]string, len(n.Dates))
	for i, d := range n.Dates {
		dates[i] = isoDate(d)
	}

	log.Infof("roster: generated schedule: status=%s assignments=%d", status, len(schedule))

	return &ResultEnvelope{
		Status:       status,
		SolverStatus: solverStatus,
		GeneratedAt:  start.Format(time.RFC3339),
		Dates:        dates,
		Employees:    employees,
		Locations:    n.Locations,
		Shifts:       shifts,
		Schedule:     schedule,
		Statistics:   statistics,
	}, nil
}
