package iotmetric

import "math"

// Summary holds statistics over a returned window. It describes the page
// actually returned, not the full matching set: the same filters with
// different pagination yield different summaries.
type Summary struct {
	Latest  float64 `json:"latest"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Summarize computes window statistics over points in ascending time
// order. The average is rounded to 2 decimal places, half away from zero.
// Returns nil for an empty window.
func Summarize(points []Point) *Summary {
	if len(points) == 0 {
		return nil
	}

	s := Summary{
		Latest: points[len(points)-1].Value,
		Min:    points[0].Value,
		Max:    points[0].Value,
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Value
		if p.Value < s.Min {
			s.Min = p.Value
		}
		if p.Value > s.Max {
			s.Max = p.Value
		}
	}
	s.Average = math.Round(sum/float64(len(points))*100) / 100
	return &s
}
