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

import "math"

// ComputeStatistics is a pure fold over schedule: it never mutates n or
// schedule and produces every field of Statistics in one pass plus a
// handful of closing reductions. This keeps it testable against
// hand-authored fixtures independent of the solver.
func ComputeStatistics(n *Normalized, schedule []Assignment) Statistics {
	st := Statistics{
		TotalAssignments:  len(schedule),
		PerEmployee:       make(map[string]int),
		PerLocation:       make(map[string]int),
		PerDay:            make(map[string]int),
		PerShiftType:      make(map[string]int),
		LocationDiversity: make(map[string]int),
	}

	employeeLocations := make(map[string]map[string]struct{})
	employeeShiftTypes := make(map[string]map[string]int)

	for _, e := range n.Employees {
		st.PerEmployee[e.ID] = 0
		st.LocationDiversity[e.ID] = 0
		employeeLocations[e.ID] = make(map[string]struct{})
		employeeShiftTypes[e.ID] = make(map[string]int)
	}

	for _, a := range schedule {
		st.PerEmployee[a.EmployeeID]++
		st.PerLocation[a.LocationID]++
		st.PerDay[a.Date]++
		st.PerShiftType[a.ShiftID]++

		employeeLocations[a.EmployeeID][a.LocationID] = struct{}{}
		employeeShiftTypes[a.EmployeeID][a.ShiftID]++
	}

	for id, locs := range employeeLocations {
		st.LocationDiversity[id] = len(locs)
	}

	numEmployees := len(n.Employees)
	counts := make([]float64, 0, numEmployees)
	for _, e := range n.Employees {
		counts = append(counts, float64(st.PerEmployee[e.ID]))
	}

	minC, maxC, sumC := minMaxSum(counts)
	avg := 0.0
	if numEmployees > 0 {
		avg = sumC / float64(numEmployees)
	}

	variance := 0.0
	for _, c := range counts {
		d := c - avg
		variance += d * d
	}
	if numEmployees > 0 {
		variance /= float64(numEmployees)
	}
	stdDev := math.Sqrt(variance)

	cvRaw := 0.0
	if avg != 0 {
		cvRaw = stdDev / avg
	}

	st.MinShiftsPerEmployee = round2(minC)
	st.MaxShiftsPerEmployee = round2(maxC)
	st.AvgShiftsPerEmployee = round2(avg)
	st.Variance = round2(variance)
	st.StdDev = round2(stdDev)
	st.CoefficientOfVariationRaw = round4(cvRaw)
	st.CoefficientOfVariation = round2(cvRaw)
	st.LoadBalanceScore = round2(clamp(100*(1-cvRaw), 0, 100))

	multiLocation := 0
	diversitySum := 0
	for _, e := range n.Employees {
		d := st.LocationDiversity[e.ID]
		diversitySum += d
		if d >= 2 {
			multiLocation++
		}
	}
	st.MultiLocationEmployees = multiLocation
	if numEmployees > 0 {
		st.DiversityRate = round2(100 * float64(multiLocation) / float64(numEmployees))
		st.AvgLocationsPerEmployee = round2(float64(diversitySum) / float64(numEmployees))
	}

	numShiftTypes := len(n.Shifts)
	st.AvgShiftDiversity = round2(meanShiftDiversity(employeeShiftTypes, numShiftTypes))

	// Guaranteed 0 by Constraints 2-4; the field exists as a contract for
	// future relaxations of those constraints.
	st.ConflictsDetected = 0

	st.OptimizationSummary.Fairness.LoadBalanceScore = st.LoadBalanceScore
	st.OptimizationSummary.Fairness.CoefficientOfVariation = st.CoefficientOfVariation
	st.OptimizationSummary.LoadBalancing.Min = st.MinShiftsPerEmployee
	st.OptimizationSummary.LoadBalancing.Max = st.MaxShiftsPerEmployee
	st.OptimizationSummary.LoadBalancing.Avg = st.AvgShiftsPerEmployee
	st.OptimizationSummary.LocationDistribution.DiversityRate = st.DiversityRate
	st.OptimizationSummary.LocationDistribution.AvgLocationsPerEmployee = st.AvgLocationsPerEmployee

	return st
}

func minMaxSum(values []float64) (min, max, sum float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, sum
}

// meanShiftDiversity computes the mean, over employees with at least one
// assignment, of their Shannon-entropy shift-type diversity normalized to
// 0-100. Employees with no assignments are excluded from the mean.
func meanShiftDiversity(employeeShiftTypes map[string]map[string]int, numShiftTypes int) float64 {
	if numShiftTypes <= 1 {
		return 0
	}
	logBase := math.Log2(float64(numShiftTypes))

	var sum float64
	var n int
	for _, counts := range employeeShiftTypes {
		total := 0
		for _, c := range counts {
			total += c
		}
		if total == 0 {
			continue
		}
		entropy := 0.0
		for _, c := range counts {
			if c == 0 {
				continue
			}
			p := float64(c) / float64(total)
			entropy -= p * math.Log2(p)
		}
		sum += 100 * entropy / logBase
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
