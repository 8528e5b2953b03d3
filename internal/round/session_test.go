package round

import (
	"errors"
	"testing"

	"github.com/kingrea/fairway/internal/course"
)

func newTestSession(t *testing.T) Session {
	t.Helper()
	s, err := NewSession(course.Default())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestNewSessionSeedsBlankHoles(t *testing.T) {
	s := newTestSession(t)
	holes := s.Holes()
	if len(holes) != course.HoleCount {
		t.Fatalf("len(holes) = %d, want %d", len(holes), course.HoleCount)
	}
	layout := course.Default()
	for i, h := range holes {
		if h.Hole != i+1 || h.Par != layout.Holes[i].Par {
			t.Fatalf("hole %d = %+v, want number %d par %d", i, h, i+1, layout.Holes[i].Par)
		}
		if h.Tee != TeeUnset || h.GIR || h.UpAndDown || h.Putts != 2 || h.Score != 0 {
			t.Fatalf("hole %d not blank: %+v", i, h)
		}
	}
	if s.ID() == "" {
		t.Fatalf("expected session id")
	}
}

func TestNewSessionRejectsInvalidCourse(t *testing.T) {
	_, err := NewSession(course.Course{Name: "broken"})
	if !errors.Is(err, course.ErrInvalidCourse) {
		t.Fatalf("expected ErrInvalidCourse, got %v", err)
	}
}

func TestApplyFieldEditLeavesPreviousSessionUntouched(t *testing.T) {
	before := newTestSession(t)
	after, err := ApplyFieldEdit(before, 3, FieldScore, 6)
	if err != nil {
		t.Fatalf("edit score: %v", err)
	}
	if got := before.Holes()[3].Score; got != 0 {
		t.Fatalf("original session mutated: score = %d", got)
	}
	if got := after.Holes()[3].Score; got != 6 {
		t.Fatalf("edited score = %d, want 6", got)
	}
}

func TestApplyFieldEditEachField(t *testing.T) {
	s := newTestSession(t)
	var err error
	steps := []struct {
		field Field
		value any
	}{
		{FieldTee, TeePenalty},
		{FieldUpAndDown, true},
		{FieldPutts, 3},
		{FieldScore, 7},
		{FieldGIR, true},
	}
	for _, step := range steps {
		s, err = ApplyFieldEdit(s, 0, step.field, step.value)
		if err != nil {
			t.Fatalf("edit %s: %v", step.field, err)
		}
	}
	got := s.Holes()[0]
	want := HoleRecord{Hole: 1, Par: got.Par, Tee: TeePenalty, GIR: true, UpAndDown: true, Putts: 3, Score: 7}
	if got != want {
		t.Fatalf("hole = %+v, want %+v", got, want)
	}
}

func TestApplyFieldEditRejectsBadInput(t *testing.T) {
	s := newTestSession(t)
	withGIR, err := ApplyFieldEdit(s, 2, FieldGIR, true)
	if err != nil {
		t.Fatalf("set gir: %v", err)
	}
	cases := []struct {
		name    string
		session Session
		index   int
		field   Field
		value   any
		want    error
	}{
		{"index low", s, -1, FieldScore, 4, ErrHoleIndex},
		{"index high", s, 18, FieldScore, 4, ErrHoleIndex},
		{"score type", s, 0, FieldScore, "4", ErrInvalidValue},
		{"negative score", s, 0, FieldScore, -2, ErrInvalidValue},
		{"negative putts", s, 0, FieldPutts, -1, ErrInvalidValue},
		{"tee outside set", s, 0, FieldTee, TeeResult("Bunker"), ErrInvalidValue},
		{"gir type", s, 0, FieldGIR, 1, ErrInvalidValue},
		{"unknown field", s, 0, Field(42), 1, ErrInvalidValue},
		{"up and down after gir", withGIR, 2, FieldUpAndDown, true, ErrFieldUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyFieldEdit(tc.session, tc.index, tc.field, tc.value)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
			if len(got.Holes()) != course.HoleCount {
				t.Fatalf("failed edit must return the session unchanged")
			}
		})
	}
}

func TestNavigationClampsToRound(t *testing.T) {
	s := newTestSession(t)
	if !s.IsFirstHole() {
		t.Fatalf("expected to start on the first hole")
	}
	s = s.Prev()
	if s.Index() != 0 {
		t.Fatalf("prev from first hole moved to %d", s.Index())
	}
	for i := 0; i < 30; i++ {
		s = s.Next()
	}
	if !s.IsLastHole() || s.Index() != 17 {
		t.Fatalf("expected last hole, got index %d", s.Index())
	}
	if s.Current().Hole != 18 {
		t.Fatalf("current hole = %d, want 18", s.Current().Hole)
	}
}

func TestEditTargetsCurrentHole(t *testing.T) {
	s := newTestSession(t).Next().Next()
	s, err := s.Edit(FieldScore, 5)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got := s.Holes()[2].Score; got != 5 {
		t.Fatalf("hole 3 score = %d, want 5", got)
	}
}

func TestFinishStampsDate(t *testing.T) {
	s := newTestSession(t)
	var err error
	for i := 0; i < course.HoleCount; i++ {
		s, err = ApplyFieldEdit(s, i, FieldScore, 4)
		if err != nil {
			t.Fatalf("edit hole %d: %v", i+1, err)
		}
	}
	summary, err := s.Finish("10/15/2026")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if summary.Total != 72 || summary.Putts != 36 || summary.Date != "10/15/2026" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestFinishOnZeroSessionFails(t *testing.T) {
	var s Session
	if _, err := s.Finish("today"); !errors.Is(err, ErrIncompleteRound) {
		t.Fatalf("expected ErrIncompleteRound, got %v", err)
	}
}
