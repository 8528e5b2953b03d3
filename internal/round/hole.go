package round

// TeeResult is the outcome of a tee shot.
type TeeResult string

const (
	TeeUnset   TeeResult = ""
	TeeFairway TeeResult = "Fairway"
	TeeLeft    TeeResult = "Left"
	TeeRight   TeeResult = "Right"
	TeePenalty TeeResult = "Penalty"
)

// TeeResults lists the recordable outcomes in display order.
func TeeResults() []TeeResult {
	return []TeeResult{TeeFairway, TeeLeft, TeeRight, TeePenalty}
}

// IsValid reports whether t is unset or one of the recordable outcomes.
func (t TeeResult) IsValid() bool {
	if t == TeeUnset {
		return true
	}
	for _, tee := range TeeResults() {
		if t == tee {
			return true
		}
	}
	return false
}

// HoleRecord is one hole's recorded data.
// UpAndDown is only meaningful when GIR is false.
type HoleRecord struct {
	Hole      int
	Par       int
	Tee       TeeResult
	GIR       bool
	UpAndDown bool
	Putts     int
	Score     int
}

// ToPar is the hole score relative to par; negative for birdies and better.
func (h HoleRecord) ToPar() int {
	return h.Score - h.Par
}

// IsDoubleOrWorse reports a score at least two over par.
func (h HoleRecord) IsDoubleOrWorse() bool {
	return h.ToPar() >= doubleThreshold
}

const (
	doubleThreshold = 2
	defaultPutts    = 2
)

func newHole(number, par int) HoleRecord {
	return HoleRecord{
		Hole:  number,
		Par:   par,
		Putts: defaultPutts,
	}
}
