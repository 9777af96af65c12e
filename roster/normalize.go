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
	"time"
)

// Normalized is the indexed view the Model Builder consumes: counts,
// the 14-day date vector, and the dense skill-compatibility matrix.
type Normalized struct {
	Employees []Employee
	Locations []Location
	Shifts    []ShiftTemplate
	Dates     []time.Time

	// Compat[e][l] holds compatible(employee e, location l): the two
	// skill sets share at least one element. A location with an empty
	// RequiredSkills set intersects nothing, so it is unreachable by
	// any employee.
	Compat [][]bool

	Params Parameters
}

// Normalize validates employees, locations and shifts, computes the
// 14-day date range starting at now's calendar day, and builds the
// skill-compatibility matrix. It returns an *Error with Kind InvalidInput
// on any validation failure.
func Normalize(employees []Employee, locations []Location, shifts []ShiftTemplate, params Parameters, now time.Time) (*Normalized, error) {
	if len(employees) == 0 {
		return nil, invalidInput("employees", "must not be empty")
	}
	if len(locations) == 0 {
		return nil, invalidInput("locations", "must not be empty")
	}
	if len(shifts) == 0 {
		return nil, invalidInput("shifts", "must not be empty")
	}

	if err := requireUniqueIDs("employees", employeeIDs(employees)); err != nil {
		return nil, err
	}
	if err := requireUniqueIDs("locations", locationIDs(locations)); err != nil {
		return nil, err
	}
	if err := requireUniqueIDs("shifts", shiftIDs(shifts)); err != nil {
		return nil, err
	}

	locs := make([]Location, len(locations))
	minCapacity := -1
	for i, l := range locations {
		capacity := l.Capacity
		if capacity == 0 {
			capacity = 20
		}
		if capacity <= 0 {
			return nil, invalidInput("locations", fmt.Sprintf("location %q has non-positive capacity %d", l.ID, l.Capacity))
		}
		l.Capacity = capacity
		locs[i] = l
		if minCapacity < 0 || capacity < minCapacity {
			minCapacity = capacity
		}
	}

	if params.MinPerShift > minCapacity {
		return nil, invalidInput("min_per_shift", fmt.Sprintf("min_per_shift (%d) exceeds the smallest location capacity (%d)", params.MinPerShift, minCapacity))
	}
	if params.MinWeek > params.MaxWeek {
		return nil, invalidInput("min_shifts_per_week", fmt.Sprintf("min_week (%d) exceeds max_week (%d)", params.MinWeek, params.MaxWeek))
	}

	dates := make([]time.Time, HorizonDays)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i)
	}

	compat := make([][]bool, len(employees))
	for e, emp := range employees {
		skillSet := toSet(emp.Skills)
		compat[e] = make([]bool, len(locs))
		for l, loc := range locs {
			if len(loc.RequiredSkills) == 0 {
				// An empty requirement set intersects nothing: the
				// location is unreachable, not wide open.
				continue
			}
			for _, rs := range loc.RequiredSkills {
				if _, ok := skillSet[rs]; ok {
					compat[e][l] = true
					break
				}
			}
		}
	}

	return &Normalized{
		Employees: employees,
		Locations: locs,
		Shifts:    shifts,
		Dates:     dates,
		Compat:    compat,
		Params:    params,
	}, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func employeeIDs(es []Employee) []string {
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.ID
	}
	return ids
}

func locationIDs(ls []Location) []string {
	ids := make([]string, len(ls))
	for i, l := range ls {
		ids[i] = l.ID
	}
	return ids
}

func shiftIDs(ss []ShiftTemplate) []string {
	ids := make([]string, len(ss))
	for i, s := range ss {
		ids[i] = s.ID
	}
	return ids
}

func requireUniqueIDs(field string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return invalidInput(field, fmt.Sprintf("duplicate id %q", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}
