package rubric

import (
	"errors"
	"fmt"
)

// Compare selects how Bands thresholds are tested.
type Compare string

const (
	// AtLeast awards a step when value >= threshold. Steps run high to low.
	AtLeast Compare = "at_least"
	// AtMost awards a step when value <= threshold. Steps run low to high.
	AtMost Compare = "at_most"
)

type Step struct {
	Threshold float64 `yaml:"threshold"`
	Score     int     `yaml:"score"`
}

// Bands is an ordered threshold ladder; the first satisfied step wins and
// Otherwise covers everything below (or above) the last step.
type Bands struct {
	Compare   Compare `yaml:"compare"`
	Steps     []Step  `yaml:"steps"`
	Otherwise int     `yaml:"otherwise"`
}

func (b Bands) Score(v float64) int {
	for _, s := range b.Steps {
		switch b.Compare {
		case AtLeast:
			if v >= s.Threshold {
				return s.Score
			}
		case AtMost:
			if v <= s.Threshold {
				return s.Score
			}
		}
	}
	return b.Otherwise
}

// Scores lists every score the ladder can produce.
func (b Bands) Scores() []int {
	out := make([]int, 0, len(b.Steps)+1)
	for _, s := range b.Steps {
		out = append(out, s.Score)
	}
	return append(out, b.Otherwise)
}

func (b Bands) validate() error {
	if b.Compare != AtLeast && b.Compare != AtMost {
		return fmt.Errorf("unknown compare %q", b.Compare)
	}
	if len(b.Steps) == 0 {
		return errors.New("no steps")
	}
	for i := 1; i < len(b.Steps); i++ {
		prev, cur := b.Steps[i-1].Threshold, b.Steps[i].Threshold
		if (b.Compare == AtLeast && cur >= prev) || (b.Compare == AtMost && cur <= prev) {
			return fmt.Errorf("step %d threshold %v out of order", i, cur)
		}
	}
	return nil
}

// Interval is a closed range [Min, Max], or (Min, Max] when MinExclusive.
type Interval struct {
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	MinExclusive bool    `yaml:"min_exclusive,omitempty"`
	Score        int     `yaml:"score"`
}

func (iv Interval) Contains(v float64) bool {
	if iv.MinExclusive {
		if v <= iv.Min {
			return false
		}
	} else if v < iv.Min {
		return false
	}
	return v <= iv.Max
}
