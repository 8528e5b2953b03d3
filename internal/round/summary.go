package round

import (
	"errors"
	"fmt"

	"github.com/kingrea/fairway/internal/course"
)

var (
	// ErrIncompleteRound means the round does not hold exactly 18 holes.
	ErrIncompleteRound = errors.New("round must have exactly 18 holes")
	// ErrHoleOrder means holes are missing, duplicated or out of order.
	ErrHoleOrder = errors.New("holes must be numbered 1..18 in order")
	// ErrNegativeValue means a score or putt count is below zero.
	ErrNegativeValue = errors.New("score and putts must not be negative")
)

// ValidationError describes why a hole list cannot be summarized.
type ValidationError struct {
	Hole   int // 0 when the problem is the round as a whole
	Reason error
}

func (e *ValidationError) Error() string {
	if e.Hole > 0 {
		return fmt.Sprintf("round: hole %d: %v", e.Hole, e.Reason)
	}
	return fmt.Sprintf("round: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Summary is the derived statistics record for one completed round.
// The JSON keys match the history format written by earlier releases.
type Summary struct {
	Total     int    `json:"total"`
	GIR       int    `json:"gir"`
	Putts     int    `json:"putts"`
	Doubles   int    `json:"doubles"`
	Penalties int    `json:"penalties"`
	UpDowns   int    `json:"upDowns"`
	Date      string `json:"date"`
}

// WithDate returns a copy of s stamped with date.
func (s Summary) WithDate(date string) Summary {
	s.Date = date
	return s
}

// Summarize reduces a completed round to its summary. Date is left empty for
// the caller to stamp, so the result depends on holes alone.
func Summarize(holes []HoleRecord) (Summary, error) {
	if err := validateHoles(holes); err != nil {
		return Summary{}, err
	}
	var s Summary
	for _, h := range holes {
		s.Total += h.Score
		s.Putts += h.Putts
		if h.GIR {
			s.GIR++
		}
		if h.IsDoubleOrWorse() {
			s.Doubles++
		}
		if h.Tee == TeePenalty {
			s.Penalties++
		}
		// counted regardless of GIR
		if h.UpAndDown {
			s.UpDowns++
		}
	}
	return s, nil
}

func validateHoles(holes []HoleRecord) error {
	if len(holes) != course.HoleCount {
		return &ValidationError{Reason: fmt.Errorf("%w: got %d", ErrIncompleteRound, len(holes))}
	}
	for i, h := range holes {
		if h.Hole != i+1 {
			return &ValidationError{Hole: i + 1, Reason: fmt.Errorf("%w: found hole %d", ErrHoleOrder, h.Hole)}
		}
		if h.Score < 0 || h.Putts < 0 {
			return &ValidationError{Hole: h.Hole, Reason: ErrNegativeValue}
		}
	}
	return nil
}
