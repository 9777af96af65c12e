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
	"time"

	"github.com/google/go-cmp/cmp"
)

// fourEmployeeFixture builds a Normalized with four employees and a
// schedule where each employee works exactly 6 shifts, matching T6.
func fourEmployeeFixture(t *testing.T) (*Normalized, []Assignment) {
	t.Helper()
	employees := []Employee{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}, {ID: "e4"}}
	locations := []Location{{ID: "l1", RequiredSkills: []string{"A"}, Capacity: 10}}
	shifts := []ShiftTemplate{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}

	for i := range employees {
		employees[i].Skills = []string{"A"}
	}

	n, err := Normalize(employees, locations, shifts, DefaultParameters(), time.Now())
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error %v", err)
	}

	var schedule []Assignment
	for _, e := range employees {
		for day := 0; day < 6; day++ {
			schedule = append(schedule, Assignment{
				EmployeeID: e.ID,
				LocationID: "l1",
				ShiftID:    shifts[day%3].ID,
				Date:       n.Dates[day].Format("2006-01-02"),
			})
		}
	}
	return n, schedule
}

func TestComputeStatistics_T6PerfectBalance(t *testing.T) {
	n, schedule := fourEmployeeFixture(t)
	st := ComputeStatistics(n, schedule)

	if st.TotalAssignments != len(schedule) {
		t.Errorf("TotalAssignments = %d, want %d", st.TotalAssignments, len(schedule))
	}
	if st.LoadBalanceScore != 100.0 {
		t.Errorf("LoadBalanceScore = %v, want 100.0", st.LoadBalanceScore)
	}
	if st.CoefficientOfVariationRaw != 0.0 {
		t.Errorf("CoefficientOfVariationRaw = %v, want 0.0", st.CoefficientOfVariationRaw)
	}
	if st.MinShiftsPerEmployee != 6 || st.MaxShiftsPerEmployee != 6 || st.AvgShiftsPerEmployee != 6 {
		t.Errorf("min/max/avg = %v/%v/%v, want 6/6/6", st.MinShiftsPerEmployee, st.MaxShiftsPerEmployee, st.AvgShiftsPerEmployee)
	}
	// Each employee cycles through all 3 shift types exactly twice: a
	// uniform distribution, so diversity should be exactly 100.
	if st.AvgShiftDiversity != 100.0 {
		t.Errorf("AvgShiftDiversity = %v, want 100.0", st.AvgShiftDiversity)
	}
	if st.ConflictsDetected != 0 {
		t.Errorf("ConflictsDetected = %d, want 0", st.ConflictsDetected)
	}

	wantPerEmployee := map[string]int{"e1": 6, "e2": 6, "e3": 6, "e4": 6}
	if diff := cmp.Diff(wantPerEmployee, st.PerEmployee); diff != "" {
		t.Errorf("PerEmployee mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStatistics_LoadBalanceScoreBounds(t *testing.T) {
	employees := []Employee{{ID: "e1"}, {ID: "e2"}}
	locations := []Location{{ID: "l1", RequiredSkills: []string{"A"}, Capacity: 10}}
	shifts := []ShiftTemplate{{ID: "s1"}}
	n, err := Normalize(employees, locations, shifts, DefaultParameters(), time.Now())
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error %v", err)
	}

	// e1 works every day, e2 never works: maximal imbalance.
	var schedule []Assignment
	for _, d := range n.Dates {
		schedule = append(schedule, Assignment{EmployeeID: "e1", LocationID: "l1", ShiftID: "s1", Date: d.Format("2006-01-02")})
	}

	st := ComputeStatistics(n, schedule)
	if st.LoadBalanceScore < 0 || st.LoadBalanceScore > 100 {
		t.Errorf("LoadBalanceScore = %v, want within [0,100]", st.LoadBalanceScore)
	}
	if st.MinShiftsPerEmployee != 0 {
		t.Errorf("MinShiftsPerEmployee = %v, want 0", st.MinShiftsPerEmployee)
	}
	if st.MaxShiftsPerEmployee != float64(len(n.Dates)) {
		t.Errorf("MaxShiftsPerEmployee = %v, want %v", st.MaxShiftsPerEmployee, len(n.Dates))
	}
}

func TestComputeStatistics_DiversityRate(t *testing.T) {
	employees := []Employee{{ID: "e1", Skills: []string{"A"}}, {ID: "e2", Skills: []string{"A"}}}
	locations := []Location{
		{ID: "l1", RequiredSkills: []string{"A"}, Capacity: 10},
		{ID: "l2", RequiredSkills: []string{"A"}, Capacity: 10},
	}
	shifts := []ShiftTemplate{{ID: "s1"}}
	n, err := Normalize(employees, locations, shifts, DefaultParameters(), time.Now())
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error %v", err)
	}

	schedule := []Assignment{
		{EmployeeID: "e1", LocationID: "l1", ShiftID: "s1", Date: n.Dates[0].Format("2006-01-02")},
		{EmployeeID: "e1", LocationID: "l2", ShiftID: "s1", Date: n.Dates[1].Format("2006-01-02")},
		{EmployeeID: "e2", LocationID: "l1", ShiftID: "s1", Date: n.Dates[0].Format("2006-01-02")},
	}

	st := ComputeStatistics(n, schedule)
	if st.MultiLocationEmployees != 1 {
		t.Errorf("MultiLocationEmployees = %d, want 1", st.MultiLocationEmployees)
	}
	if st.DiversityRate != 50.0 {
		t.Errorf("DiversityRate = %v, want 50.0", st.DiversityRate)
	}
}
