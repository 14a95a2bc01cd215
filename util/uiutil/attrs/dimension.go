package attrs

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Unit int

const (
	UnitPx Unit = iota
	UnitDp
)

// Size value with a unit. Plain numbers are pixels.
type Dimension struct {
	Value float64
	Unit  Unit
	Set   bool
}

func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	u := UnitPx
	switch {
	case strings.HasSuffix(s, "px"):
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "dip"):
		s, u = s[:len(s)-3], UnitDp
	case strings.HasSuffix(s, "dp"):
		s, u = s[:len(s)-2], UnitDp
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Dimension{}, errors.Errorf("bad dimension: %q", s)
	}
	return Dimension{Value: v, Unit: u, Set: true}, nil
}

func (d *Dimension) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: dimension must be a scalar", n.Line)
	}
	d2, err := ParseDimension(n.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", n.Line)
	}
	*d = d2
	return nil
}

// Rounds to the nearest pixel. A non-zero value never rounds to zero.
func (d Dimension) Pixels(density float64) int {
	f := d.Value
	if d.Unit == UnitDp {
		f *= density
	}
	var r int
	if f >= 0 {
		r = int(math.Floor(f + 0.5))
	} else {
		r = int(math.Ceil(f - 0.5))
	}
	if r == 0 && f != 0 {
		if f > 0 {
			return 1
		}
		return -1
	}
	return r
}

// Returns def if the dimension was not set.
func (d Dimension) PixelsOr(density float64, def int) int {
	if !d.Set {
		return def
	}
	return d.Pixels(density)
}
