package application

import "sort"

// Filter — представление списка откликов для работодателя.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterShortlist Filter = "shortlist"
	FilterRejected  Filter = "rejected"
)

// ValidFilter reports whether f is a known projection filter.
func ValidFilter(f Filter) bool {
	return f == FilterAll || f == FilterShortlist || f == FilterRejected
}

// scoreRank ranks unscored applications below any scored one.
func scoreRank(a Application) int {
	if a.CVScore == nil {
		return -1
	}
	return *a.CVScore
}

// Project строит отфильтрованное и упорядоченное представление откликов.
// Чистая функция: вход не мутируется, порядок детерминирован.
//
//	all       — скор по убыванию (без скора в конце), затем свежие раньше;
//	shortlist — ACCEPTED и INTERVIEW_SCHEDULED, скор по убыванию;
//	rejected  — REJECTED в порядке хранилища.
func Project(apps []Application, f Filter) []Application {
	out := make([]Application, 0, len(apps))
	switch f {
	case FilterShortlist:
		for _, a := range apps {
			if a.Status.Shortlisted() {
				out = append(out, a)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return scoreRank(out[i]) > scoreRank(out[j])
		})
	case FilterRejected:
		for _, a := range apps {
			if a.Status == StatusRejected {
				out = append(out, a)
			}
		}
	default:
		out = append(out, apps...)
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := scoreRank(out[i]), scoreRank(out[j])
			if ri != rj {
				return ri > rj
			}
			return out[i].AppliedAt.After(out[j].AppliedAt)
		})
	}
	return out
}
