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
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
)

// Extract reads the support in row-major (e, d, l, s) order and emits an
// Assignment for every variable valued 1 in resp. The returned slice is
// therefore already in lexicographic (employee, day, location, shift)
// order.
func Extract(n *Normalized, bm *BuiltModel, resp *cmpb.CpSolverResponse) []Assignment {
	var out []Assignment
	for e := 0; e < bm.E; e++ {
		for d := 0; d < bm.D; d++ {
			for l := 0; l < bm.L; l++ {
				for s := 0; s < bm.S; s++ {
					if !bm.HasVar(e, d, l, s) {
						continue
					}
					if !cpmodel.SolutionBooleanValue(resp, bm.Var(e, d, l, s)) {
						continue
					}
					out = append(out, Assignment{
						EmployeeID:   n.Employees[e].ID,
						EmployeeName: n.Employees[e].Name,
						LocationID:   n.Locations[l].ID,
						LocationName: n.Locations[l].Name,
						ShiftID:      n.Shifts[s].ID,
						ShiftName:    n.Shifts[s].Name,
						Date:         isoDate(n.Dates[d]),
						StartTime:    n.Shifts[s].StartTime,
						EndTime:      n.Shifts[s].EndTime,
					})
				}
			}
		}
	}
	return out
}
