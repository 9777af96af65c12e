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

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// BuiltModel owns the CP-SAT builder and the decision variable support for
// the lifetime of one solve. It is discarded after extraction.
type BuiltModel struct {
	Builder *cpmodel.Builder

	E, D, L, S int

	// vars and support are flat arrays indexed by offset(e,d,l,s). This
	// keeps the hot constraint-construction loop off a hash map and
	// keeps cells for the same employee contiguous in memory.
	vars    []cpmodel.BoolVar
	support []bool

	// totals[e] is the linear expression for employee e's shift count
	// across the whole horizon; Extract doesn't need it, but the
	// objective does.
	totals []*cpmodel.LinearExpr

	// FloorVar is the `m = min_e T_e` variable the objective maximizes.
	FloorVar cpmodel.IntVar
}

func (bm *BuiltModel) index(e, d, l, s int) int {
	return ((e*bm.D+d)*bm.L+l)*bm.S + s
}

// HasVar reports whether a decision variable exists for (e,d,l,s), i.e.
// whether the tuple is in the support.
func (bm *BuiltModel) HasVar(e, d, l, s int) bool {
	return bm.support[bm.index(e, d, l, s)]
}

// Var returns the decision variable for (e,d,l,s). Callers must check
// HasVar first; Var panics on an out-of-support tuple instead of
// silently returning a zero BoolVar the way a map read on an absent key
// would.
func (bm *BuiltModel) Var(e, d, l, s int) cpmodel.BoolVar {
	i := bm.index(e, d, l, s)
	if !bm.support[i] {
		panic(fmt.Sprintf("roster: Var(%d,%d,%d,%d) is not in the support", e, d, l, s))
	}
	return bm.vars[i]
}

// BuildModel constructs the CP-SAT model for n: the decision variable
// support, the five hard constraints, and the fairness objective.
func BuildModel(n *Normalized) (*BuiltModel, error) {
	b := cpmodel.NewCpModelBuilder()
	E, D, L, S := len(n.Employees), len(n.Dates), len(n.Locations), len(n.Shifts)

	bm := &BuiltModel{
		Builder: b,
		E:       E, D: D, L: L, S: S,
		vars:    make([]cpmodel.BoolVar, E*D*L*S),
		support: make([]bool, E*D*L*S),
		totals:  make([]*cpmodel.LinearExpr, E),
	}

	for e := 0; e < E; e++ {
		for d := 0; d < D; d++ {
			for l := 0; l < L; l++ {
				if !n.Compat[e][l] {
					continue
				}
				for s := 0; s < S; s++ {
					name := fmt.Sprintf("x_e%d_d%d_l%d_s%d", e, d, l, s)
					i := bm.index(e, d, l, s)
					bm.vars[i] = b.NewBoolVar().WithName(name)
					bm.support[i] = true
				}
			}
		}
	}

	addCoverageAndCapacity(b, bm, n)
	addNoDoubleBooking(b, bm)
	addNoAdjacentStacking(b, bm)
	addWeeklyVolumeBounds(b, bm, n)
	addFairnessObjective(b, bm, n)

	return bm, nil
}

// addCoverageAndCapacity adds Constraint 1 (minimum coverage) and
// Constraint 2 (capacity) for every (d, l, s) cell with non-empty support.
func addCoverageAndCapacity(b *cpmodel.Builder, bm *BuiltModel, n *Normalized) {
	for d := 0; d < bm.D; d++ {
		for l := 0; l < bm.L; l++ {
			capacity := int64(n.Locations[l].Capacity)
			for s := 0; s < bm.S; s++ {
				cell := cellVars(bm, d, l, s)
				if len(cell) == 0 {
					continue
				}
				sum := cpmodel.NewLinearExpr().AddSum(boolsToArgs(cell)...)
				if n.Params.MinPerShift > 0 {
					b.AddGreaterOrEqual(sum, cpmodel.NewConstant(int64(n.Params.MinPerShift)))
				}
				b.AddLessOrEqual(sum, cpmodel.NewConstant(capacity))
			}
		}
	}
}

func cellVars(bm *BuiltModel, d, l, s int) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for e := 0; e < bm.E; e++ {
		if bm.HasVar(e, d, l, s) {
			out = append(out, bm.Var(e, d, l, s))
		}
	}
	return out
}

func boolsToArgs(bvs []cpmodel.BoolVar) []cpmodel.LinearArgument {
	out := make([]cpmodel.LinearArgument, len(bvs))
	for i, b := range bvs {
		out[i] = b
	}
	return out
}

// addNoDoubleBooking adds Constraint 3: for every (e, d, s), at most one
// location.
func addNoDoubleBooking(b *cpmodel.Builder, bm *BuiltModel) {
	for e := 0; e < bm.E; e++ {
		for d := 0; d < bm.D; d++ {
			for s := 0; s < bm.S; s++ {
				var vs []cpmodel.BoolVar
				for l := 0; l < bm.L; l++ {
					if bm.HasVar(e, d, l, s) {
						vs = append(vs, bm.Var(e, d, l, s))
					}
				}
				if len(vs) > 1 {
					b.AddAtMostOne(vs...)
				}
			}
		}
	}
}

// addNoAdjacentStacking adds Constraint 4: for every (e, d) and adjacent
// shift pair (s, s+1), at most one of the two shifts is worked.
// Wrap-around (last shift of a day to the first of the next) is not
// constrained: adjacency only holds within a single calendar day.
func addNoAdjacentStacking(b *cpmodel.Builder, bm *BuiltModel) {
	for e := 0; e < bm.E; e++ {
		for d := 0; d < bm.D; d++ {
			for s := 0; s < bm.S-1; s++ {
				var vs []cpmodel.BoolVar
				for l := 0; l < bm.L; l++ {
					if bm.HasVar(e, d, l, s) {
						vs = append(vs, bm.Var(e, d, l, s))
					}
					if bm.HasVar(e, d, l, s+1) {
						vs = append(vs, bm.Var(e, d, l, s+1))
					}
				}
				if len(vs) > 1 {
					b.AddAtMostOne(vs...)
				}
			}
		}
	}
}

// addWeeklyVolumeBounds adds Constraint 5: for every (e, week), the total
// assignments across that week fall in [min_week, max_week]. Week 1 is
// clamped to the horizon, so this still does the right thing if
// HorizonDays is ever not a multiple of 7.
func addWeeklyVolumeBounds(b *cpmodel.Builder, bm *BuiltModel, n *Normalized) {
	for e := 0; e < bm.E; e++ {
		bm.totals[e] = cpmodel.NewLinearExpr()
		for d := 0; d < bm.D; d++ {
			for l := 0; l < bm.L; l++ {
				for s := 0; s < bm.S; s++ {
					if bm.HasVar(e, d, l, s) {
						bm.totals[e].Add(bm.Var(e, d, l, s))
					}
				}
			}
		}
	}

	for e := 0; e < bm.E; e++ {
		for weekStart := 0; weekStart < bm.D; weekStart += 7 {
			weekEnd := weekStart + 6
			if weekEnd > bm.D-1 {
				weekEnd = bm.D - 1
			}
			week := cpmodel.NewLinearExpr()
			for d := weekStart; d <= weekEnd; d++ {
				for l := 0; l < bm.L; l++ {
					for s := 0; s < bm.S; s++ {
						if bm.HasVar(e, d, l, s) {
							week.Add(bm.Var(e, d, l, s))
						}
					}
				}
			}
			b.AddGreaterOrEqual(week, cpmodel.NewConstant(int64(n.Params.MinWeek)))
			b.AddLessOrEqual(week, cpmodel.NewConstant(int64(n.Params.MaxWeek)))
		}
	}
}

// addFairnessObjective introduces m = min_e T_e and maximizes it (or, for
// FairnessWeighted, maximizes the floor minus λ times the spread between
// the floor and the busiest employee's total).
func addFairnessObjective(b *cpmodel.Builder, bm *BuiltModel, n *Normalized) {
	upperBound := int64(bm.D * bm.L * bm.S)

	exprs := make([]cpmodel.LinearArgument, len(bm.totals))
	for i, t := range bm.totals {
		exprs[i] = t
	}

	floor := b.NewIntVar(0, upperBound).WithName("fairness_floor")
	b.AddMinEquality(floor, exprs...)
	bm.FloorVar = floor

	switch n.Params.Fairness {
	case FairnessWeighted:
		ceiling := b.NewIntVar(0, upperBound).WithName("fairness_ceiling")
		b.AddMaxEquality(ceiling, exprs...)

		num := int64(n.Params.FairnessLambdaNum)
		den := int64(n.Params.FairnessLambdaDen)
		if den <= 0 {
			den = 1
		}
		// maximize (1+λ)·floor - λ·ceiling, scaled by den to keep
		// integer coefficients: (den+num)·floor - num·ceiling.
		objective := cpmodel.NewLinearExpr().
			AddTerm(floor, den+num).
			AddTerm(ceiling, -num)
		b.Maximize(objective)
	default:
		b.Maximize(floor)
	}
}
