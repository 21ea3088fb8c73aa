package scoring

import (
	"math"

	"github.com/aazdagabde/smart-hire/pkg/application"
)

// Stats — сводка по откликам одного оффера.
type Stats struct {
	Total        int `json:"total"`
	Analyzed     int `json:"analyzed"`
	Shortlisted  int `json:"shortlisted"`
	AverageScore int `json:"averageScore"`
}

// Aggregate считает сводку: analyzed — отклики с выставленным скором,
// shortlisted — ACCEPTED и INTERVIEW_SCHEDULED, averageScore — округлённое
// среднее по проанализированным (0, если таких нет; деления на ноль не бывает).
func Aggregate(apps []application.Application) Stats {
	st := Stats{Total: len(apps)}
	sum := 0
	for _, a := range apps {
		if a.CVScore != nil {
			st.Analyzed++
			sum += *a.CVScore
		}
		if a.Status.Shortlisted() {
			st.Shortlisted++
		}
	}
	if st.Analyzed > 0 {
		st.AverageScore = int(math.Round(float64(sum) / float64(st.Analyzed)))
	}
	return st
}
