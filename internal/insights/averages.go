package insights

import "github.com/kingrea/fairway/internal/round"

// PersonalAverages are per-round means over a history of summaries.
type PersonalAverages struct {
	Rounds    int
	Total     float64
	GIR       float64
	Putts     float64
	UpDowns   float64
	Penalties float64
	Doubles   float64
}

// Averages computes the mean of each statistic across history.
// The zero value is returned for an empty history.
func Averages(history []round.Summary) PersonalAverages {
	if len(history) == 0 {
		return PersonalAverages{}
	}
	var sum round.Summary
	for _, s := range history {
		sum.Total += s.Total
		sum.GIR += s.GIR
		sum.Putts += s.Putts
		sum.UpDowns += s.UpDowns
		sum.Penalties += s.Penalties
		sum.Doubles += s.Doubles
	}
	n := float64(len(history))
	return PersonalAverages{
		Rounds:    len(history),
		Total:     float64(sum.Total) / n,
		GIR:       float64(sum.GIR) / n,
		Putts:     float64(sum.Putts) / n,
		UpDowns:   float64(sum.UpDowns) / n,
		Penalties: float64(sum.Penalties) / n,
		Doubles:   float64(sum.Doubles) / n,
	}
}
