// internal/insights/insights.go
//
// Turns a round summary into short coaching notes. Two policies exist:
//
// 1. Threshold: fixed rules evaluated against the round alone.
// 2. Comparative: strokes gained or lost per area against personal averages.
//
// ModeAuto picks comparative whenever there is history to compare against.

package insights

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/kingrea/fairway/internal/course"
	"github.com/kingrea/fairway/internal/round"
)

// Mode selects the insight policy.
type Mode string

const (
	ModeAuto        Mode = "auto"
	ModeThreshold   Mode = "threshold"
	ModeComparative Mode = "comparative"
)

// Threshold messages, in evaluation order.
const (
	MsgPenalties = "Penalties cost you shots — tee strategy needs tightening."
	MsgDoubles   = "Too many doubles. Prioritise bogey avoidance."
	MsgPutting   = "Putting lost strokes. Focus on lag speed."
	MsgApproach  = "Approach play costing strokes. Middle of green bias."
	MsgShortGame = "Short game underperformed. More bump-and-run."
	MsgSolid     = "Solid round. Keep playing this strategy."
)

const (
	maxPenalties      = 1
	maxDoubles        = 2
	maxPutts          = 32
	minGIR            = 7
	minUpAndDownRatio = 0.3
)

// ParseMode maps a config value to a Mode. Empty means ModeAuto.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeThreshold:
		return ModeThreshold, nil
	case ModeComparative:
		return ModeComparative, nil
	default:
		return "", fmt.Errorf("insights: unknown mode %q (want auto, threshold or comparative)", value)
	}
}

// Engine generates insights with a fixed policy.
type Engine struct {
	mode Mode
}

// NewEngine returns an engine for mode; unknown modes behave like ModeAuto.
func NewEngine(mode Mode) Engine {
	return Engine{mode: mode}
}

// Mode reports the configured policy.
func (e Engine) Mode() Mode {
	if e.mode == "" {
		return ModeAuto
	}
	return e.mode
}

// Generate returns the ordered insight lines for current. history holds the
// rounds played before current, oldest first. It never fails: without
// history the comparative policy has nothing to average and the threshold
// rules apply instead.
func (e Engine) Generate(current round.Summary, history []round.Summary) []string {
	if e.Mode() == ModeThreshold || len(history) == 0 {
		return Threshold(current)
	}
	return Comparative(current, history)
}

// Generate runs the ModeAuto policy.
func Generate(current round.Summary, history []round.Summary) []string {
	return NewEngine(ModeAuto).Generate(current, history)
}

// Threshold evaluates the fixed rules independently, in order. The fallback
// line is returned only when no rule fired.
func Threshold(s round.Summary) []string {
	var out []string
	if s.Penalties > maxPenalties {
		out = append(out, MsgPenalties)
	}
	if s.Doubles > maxDoubles {
		out = append(out, MsgDoubles)
	}
	if s.Putts > maxPutts {
		out = append(out, MsgPutting)
	}
	if s.GIR < minGIR {
		out = append(out, MsgApproach)
	}
	// no missed greens means no up-and-down chances; skip the rule
	if missed := course.HoleCount - s.GIR; missed > 0 {
		if float64(s.UpDowns)/float64(missed) < minUpAndDownRatio {
			out = append(out, MsgShortGame)
		}
	}
	if len(out) == 0 {
		out = append(out, MsgSolid)
	}
	return out
}

// Comparative reports strokes gained or lost per area against the averages
// of history. Always four lines: driving, approach, short game, putting.
// With empty history it falls back to Threshold.
func Comparative(current round.Summary, history []round.Summary) []string {
	if len(history) == 0 {
		return Threshold(current)
	}
	avg := Averages(history)
	return []string{
		strokesLine("Driving", avg.Penalties-float64(current.Penalties)),
		strokesLine("Approach", float64(current.GIR)-avg.GIR),
		strokesLine("Short game", float64(current.UpDowns)-avg.UpDowns),
		strokesLine("Putting", avg.Putts-float64(current.Putts)),
	}
}

func strokesLine(area string, diff float64) string {
	verb := "gained"
	if diff < 0 {
		verb = "lost"
	}
	return fmt.Sprintf("%s %s %s strokes this round.", area, verb, oneDecimal(math.Abs(diff)))
}

// oneDecimal rounds the exact binary value of v (v >= 0) to one decimal,
// taking the larger neighbour on a tie. 0.25 prints as 0.3, while 0.15, whose
// float64 value sits just below the midpoint, prints as 0.1.
func oneDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.1f", v)
	}
	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, big.NewRat(10, 1))
	r.Add(r, big.NewRat(1, 2))
	tenths := new(big.Int).Quo(r.Num(), r.Denom())
	whole, frac := new(big.Int).QuoRem(tenths, big.NewInt(10), new(big.Int))
	return fmt.Sprintf("%s.%s", whole.String(), frac.String())
}
