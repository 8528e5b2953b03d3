package course

import (
	"errors"
	"testing"
)

func TestDefaultCourseIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default course invalid: %v", err)
	}
	if got := c.Par(); got != 72 {
		t.Fatalf("default par = %d, want 72", got)
	}
}

func TestValidateRejectsBadLayouts(t *testing.T) {
	short := Default()
	short.Holes = short.Holes[:17]

	swapped := Default()
	swapped.Holes[3], swapped.Holes[4] = swapped.Holes[4], swapped.Holes[3]

	badPar := Default()
	badPar.Holes[0].Par = 2

	cases := map[string]Course{
		"short":   short,
		"swapped": swapped,
		"bad par": badPar,
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := c.Validate()
			if !errors.Is(err, ErrInvalidCourse) {
				t.Fatalf("expected ErrInvalidCourse, got %v", err)
			}
		})
	}
}

func TestDisplayNameFallsBack(t *testing.T) {
	c := Course{Name: "   "}
	if got := c.DisplayName(); got != defaultName {
		t.Fatalf("display name = %q, want %q", got, defaultName)
	}
}
