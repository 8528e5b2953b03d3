package round

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kingrea/fairway/internal/course"
)

// Field names an editable HoleRecord attribute.
type Field int

const (
	FieldTee Field = iota
	FieldGIR
	FieldUpAndDown
	FieldPutts
	FieldScore
)

func (f Field) String() string {
	switch f {
	case FieldTee:
		return "tee"
	case FieldGIR:
		return "gir"
	case FieldUpAndDown:
		return "upAndDown"
	case FieldPutts:
		return "putts"
	case FieldScore:
		return "score"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

var (
	// ErrHoleIndex means the edit targets a hole outside 0..17.
	ErrHoleIndex = errors.New("hole index out of range")
	// ErrInvalidValue means the value has the wrong type or range for the field.
	ErrInvalidValue = errors.New("invalid value for field")
	// ErrFieldUnavailable means the field cannot be edited in the hole's current state.
	ErrFieldUnavailable = errors.New("field not editable")
)

// Session is an in-progress round. Every transition returns a new Session and
// leaves the receiver untouched, so earlier values stay valid snapshots.
type Session struct {
	id    string
	holes []HoleRecord
	index int
}

// NewSession seeds 18 blank holes from the course layout.
func NewSession(c course.Course) (Session, error) {
	if err := c.Validate(); err != nil {
		return Session{}, fmt.Errorf("round: new session: %w", err)
	}
	holes := make([]HoleRecord, len(c.Holes))
	for i, h := range c.Holes {
		holes[i] = newHole(h.Number, h.Par)
	}
	return Session{id: uuid.NewString(), holes: holes}, nil
}

// ID identifies the session in logs. It is never persisted.
func (s Session) ID() string {
	return s.id
}

// Index is the zero-based position of the hole being edited.
func (s Session) Index() int {
	return s.index
}

// Current returns the hole being edited.
func (s Session) Current() HoleRecord {
	if len(s.holes) == 0 {
		return HoleRecord{}
	}
	return s.holes[s.index]
}

// Holes returns a copy of every hole record.
func (s Session) Holes() []HoleRecord {
	out := make([]HoleRecord, len(s.holes))
	copy(out, s.holes)
	return out
}

// IsFirstHole reports whether navigation backwards is possible.
func (s Session) IsFirstHole() bool {
	return s.index == 0
}

// IsLastHole reports whether the session is on the final hole.
func (s Session) IsLastHole() bool {
	return s.index == len(s.holes)-1
}

// Next moves to the following hole, stopping at the last one.
func (s Session) Next() Session {
	if s.index < len(s.holes)-1 {
		s.index++
	}
	return s
}

// Prev moves to the previous hole, stopping at the first one.
func (s Session) Prev() Session {
	if s.index > 0 {
		s.index--
	}
	return s
}

// Edit applies a field edit to the current hole.
func (s Session) Edit(field Field, value any) (Session, error) {
	return ApplyFieldEdit(s, s.index, field, value)
}

// Finish summarizes the session and stamps the summary with date.
func (s Session) Finish(date string) (Summary, error) {
	summary, err := Summarize(s.holes)
	if err != nil {
		return Summary{}, err
	}
	return summary.WithDate(date), nil
}

// ApplyFieldEdit returns a copy of s with one field of one hole replaced.
func ApplyFieldEdit(s Session, holeIndex int, field Field, value any) (Session, error) {
	if holeIndex < 0 || holeIndex >= len(s.holes) {
		return s, fmt.Errorf("round: %w: %d", ErrHoleIndex, holeIndex)
	}
	hole := s.holes[holeIndex]
	switch field {
	case FieldTee:
		tee, ok := value.(TeeResult)
		if !ok || !tee.IsValid() {
			return s, invalidValue(field, value)
		}
		hole.Tee = tee
	case FieldGIR:
		gir, ok := value.(bool)
		if !ok {
			return s, invalidValue(field, value)
		}
		hole.GIR = gir
	case FieldUpAndDown:
		upDown, ok := value.(bool)
		if !ok {
			return s, invalidValue(field, value)
		}
		if hole.GIR {
			return s, fmt.Errorf("round: hole %d: %w: %s while green hit in regulation", hole.Hole, ErrFieldUnavailable, field)
		}
		hole.UpAndDown = upDown
	case FieldPutts:
		putts, ok := value.(int)
		if !ok || putts < 0 {
			return s, invalidValue(field, value)
		}
		hole.Putts = putts
	case FieldScore:
		score, ok := value.(int)
		if !ok || score < 0 {
			return s, invalidValue(field, value)
		}
		hole.Score = score
	default:
		return s, invalidValue(field, value)
	}

	holes := make([]HoleRecord, len(s.holes))
	copy(holes, s.holes)
	holes[holeIndex] = hole
	s.holes = holes
	return s, nil
}

func invalidValue(field Field, value any) error {
	return fmt.Errorf("round: %w: %s = %v (%T)", ErrInvalidValue, field, value, value)
}
