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

// Package roster builds and solves a two-week shift assignment model with
// CP-SAT and derives the statistics package downstream components consume.
//
// The entry point is Generate. Everything else (Normalize, BuildModel,
// Solve, Extract, ComputeStatistics) is exported because each stage is a
// pure, independently testable function over its predecessor's output,
// per the pipeline in the component design.
package roster

import "time"

// HorizonDays is the fixed length of the scheduling window: a two-week
// rotation, not a tunable parameter.
const HorizonDays = 14

// Employee is a roster entry: a stable identifier, a display name, and an
// unordered, duplicate-free set of skills.
type Employee struct {
	ID     string
	Name   string
	Skills []string
}

// Location is a place shifts can be worked: a stable identifier, a display
// name, an unordered set of required skills, and a capacity. Capacity 0
// on input means "unspecified" and is normalized to 20.
type Location struct {
	ID             string
	Name           string
	RequiredSkills []string
	Capacity       int
}

// ShiftTemplate is one entry in the fixed daily shift sequence (e.g.
// morning/afternoon/evening). Its position in the input slice is its
// adjacency index; Constraint 4 reads meaning into indices s and s+1.
type ShiftTemplate struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
}

// Assignment binds one employee to one (date, location, shift) cell. It is
// deliberately denormalized so a consumer never needs to re-join against
// the input collections.
type Assignment struct {
	EmployeeID   string
	EmployeeName string
	LocationID   string
	LocationName string
	ShiftID      string
	ShiftName    string
	Date         string
	StartTime    string
	EndTime      string
}

// FairnessStrategy selects the objective Model Builder maximizes.
type FairnessStrategy int

const (
	// FairnessMaxMin maximizes the floor of per-employee shift totals.
	// This is the default.
	FairnessMaxMin FairnessStrategy = iota
	// FairnessWeighted maximizes the floor while penalizing the spread
	// between the floor and the busiest employee's total.
	FairnessWeighted
)

// Overrides is the subset of solver parameters an external advisor may
// suggest. Only these three fields are ever honored; anything else a
// richer advisor might propose is ignored by design.
type Overrides struct {
	MinEmployeesPerShift *int
	MaxShiftsPerWeek     *int
	MinShiftsPerWeek     *int
}

// Parameters are the tunable defaults for constraint construction and the
// solver budget. Build these as a struct literal — this package has no
// file-backed config layer.
type Parameters struct {
	MinPerShift int
	MinWeek     int
	MaxWeek     int

	MaxSolveSeconds float64

	Fairness          FairnessStrategy
	FairnessLambdaNum int
	FairnessLambdaDen int
}

// DefaultParameters returns the standard baseline: min_per_shift=2,
// min_week=5, max_week=10, a 60-second solve budget, and max-min fairness.
func DefaultParameters() Parameters {
	return Parameters{
		MinPerShift:       2,
		MinWeek:           5,
		MaxWeek:           10,
		MaxSolveSeconds:   60.0,
		Fairness:          FairnessMaxMin,
		FairnessLambdaNum: 1,
		FairnessLambdaDen: 4,
	}
}

// ApplyOverrides merges the advisor's overrides into p, honoring only
// {MinEmployeesPerShift, MaxShiftsPerWeek, MinShiftsPerWeek}, and
// validates the result. It never mutates p's caller-visible copy.
func ApplyOverrides(p Parameters, o *Overrides) (Parameters, error) {
	if o == nil {
		return p, nil
	}
	if o.MinEmployeesPerShift != nil {
		if *o.MinEmployeesPerShift < 0 {
			return p, invalidInput("min_employees_per_shift", "must be non-negative")
		}
		p.MinPerShift = *o.MinEmployeesPerShift
	}
	if o.MinShiftsPerWeek != nil {
		if *o.MinShiftsPerWeek < 0 {
			return p, invalidInput("min_shifts_per_week", "must be non-negative")
		}
		p.MinWeek = *o.MinShiftsPerWeek
	}
	if o.MaxShiftsPerWeek != nil {
		if *o.MaxShiftsPerWeek < 0 {
			return p, invalidInput("max_shifts_per_week", "must be non-negative")
		}
		p.MaxWeek = *o.MaxShiftsPerWeek
	}
	if p.MinWeek > p.MaxWeek {
		return p, invalidInput("min_shifts_per_week", "min_week must be <= max_week")
	}
	return p, nil
}

// Statistics is the derived statistics package computed over a schedule.
// All floating-point fields are rounded to 2 decimals except
// CoefficientOfVariationRaw, which is rounded to 4.
type Statistics struct {
	TotalAssignments int

	PerEmployee  map[string]int
	PerLocation  map[string]int
	PerDay       map[string]int
	PerShiftType map[string]int

	MinShiftsPerEmployee float64
	MaxShiftsPerEmployee float64
	AvgShiftsPerEmployee float64

	Variance                  float64
	StdDev                    float64
	CoefficientOfVariation    float64
	CoefficientOfVariationRaw float64
	LoadBalanceScore          float64

	LocationDiversity       map[string]int
	MultiLocationEmployees  int
	DiversityRate           float64
	AvgLocationsPerEmployee float64

	AvgShiftDiversity float64

	ConflictsDetected int

	OptimizationSummary OptimizationSummary
}

// OptimizationSummary is a grouped view over fields already present in
// Statistics, provided as a convenience for downstream consumers that want
// a single object per concern.
type OptimizationSummary struct {
	Fairness struct {
		LoadBalanceScore       float64
		CoefficientOfVariation float64
	}
	LoadBalancing struct {
		Min float64
		Max float64
		Avg float64
	}
	LocationDistribution struct {
		DiversityRate           float64
		AvgLocationsPerEmployee float64
	}
}

// ResultEnvelope is the full output of Generate.
type ResultEnvelope struct {
	Status       string
	SolverStatus string
	GeneratedAt  string

	Dates []string

	Employees []Employee
	Locations []Location
	Shifts    []ShiftTemplate

	Schedule   []Assignment
	Statistics Statistics
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
