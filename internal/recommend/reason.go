package recommend

import "sort"

// Impact levels used to order reasons. Higher impact sorts first.
const (
	ImpactLow      = 1
	ImpactModerate = 2
	ImpactMedium   = 3
	ImpactHigh     = 4
	ImpactTop      = 5
)

// Reason is a human-readable justification for a score contribution.
// Reasons are generated fresh per scoring call and never shared.
type Reason struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Impact int    `json:"impact"`
}

// sortReasons orders reasons by descending impact. The sort is stable so
// reasons with equal impact keep the order in which they were emitted.
func sortReasons(reasons []Reason) []Reason {
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Impact > reasons[j].Impact
	})
	return reasons
}
