// internal/course/course.go
//
// Course layout data: the ordered (hole, par) pairs a new round is built from.
// The layout itself is static and lives in .fairway/config.yaml; this package
// only models and validates it.

package course

import (
	"errors"
	"fmt"
	"strings"
)

// HoleCount is the number of holes in a round.
const HoleCount = 18

const (
	minPar = 3
	maxPar = 6

	defaultName = "Par 72"
)

// ErrInvalidCourse is returned when a layout cannot seed a round.
var ErrInvalidCourse = errors.New("invalid course")

// Hole is a single entry of the course layout.
type Hole struct {
	Number int `yaml:"hole"`
	Par    int `yaml:"par"`
}

// Course is an 18 hole layout.
type Course struct {
	Name  string `yaml:"name"`
	Holes []Hole `yaml:"holes"`
}

// defaultPars is a conventional par-72 layout: two par 5s and two par 3s per nine.
var defaultPars = [HoleCount]int{4, 5, 4, 3, 4, 4, 5, 3, 4, 4, 4, 3, 5, 4, 4, 3, 5, 4}

// Default returns the built-in layout used when no course is configured.
func Default() Course {
	holes := make([]Hole, HoleCount)
	for i, par := range defaultPars {
		holes[i] = Hole{Number: i + 1, Par: par}
	}
	return Course{Name: defaultName, Holes: holes}
}

// Validate checks the layout has holes 1..18 in order with sensible pars.
func (c Course) Validate() error {
	if len(c.Holes) != HoleCount {
		return fmt.Errorf("%w: expected %d holes, got %d", ErrInvalidCourse, HoleCount, len(c.Holes))
	}
	for i, h := range c.Holes {
		if h.Number != i+1 {
			return fmt.Errorf("%w: holes[%d] is hole %d, want %d", ErrInvalidCourse, i, h.Number, i+1)
		}
		if h.Par < minPar || h.Par > maxPar {
			return fmt.Errorf("%w: hole %d par %d outside %d..%d", ErrInvalidCourse, h.Number, h.Par, minPar, maxPar)
		}
	}
	return nil
}

// Par returns the total par of the layout.
func (c Course) Par() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// DisplayName falls back to a generic label for unnamed layouts.
func (c Course) DisplayName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return defaultName
}
