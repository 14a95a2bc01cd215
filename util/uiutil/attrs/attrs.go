// Package attrs reads the rounded box attributes from yaml.
//
//	rc_brush_type: 1        # 1=stroke, 0=fill
//	rc_color: "#444444"     # #rgb, #rrggbb, #aarrggbb or a color name
//	rc_stroke_size: 5px     # px (default) or dp
//	rc_corner_radius: 10dp
//	padding: [4, 4, 4, 4]   # top, right, bottom, left; or a single value
//	min_size: 900x1000      # optional minimum shape size
package attrs

import (
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmigpin/roundcorner/util/imageutil"
	"github.com/jmigpin/roundcorner/util/uiutil/widget"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Unset attributes use the widget defaults.
type Attrs struct {
	BrushType    *int      `yaml:"rc_brush_type" validate:"omitempty,oneof=0 1"`
	Color        string    `yaml:"rc_color"`
	StrokeSize   Dimension `yaml:"rc_stroke_size"`
	CornerRadius Dimension `yaml:"rc_corner_radius"`
	Padding      Padding   `yaml:"padding"`
	MinSize      string    `yaml:"min_size"`
}

var validate = validator.New()

func Parse(b []byte) (*Attrs, error) {
	a := &Attrs{}
	if err := yaml.Unmarshal(b, a); err != nil {
		return nil, errors.Wrap(err, "attrs")
	}
	if err := validate.Struct(a); err != nil {
		return nil, errors.Wrap(err, "attrs")
	}
	return a, nil
}

func ReadFile(filename string) (*Attrs, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	a, err := Parse(b)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return a, nil
}

//----------

// Density is the dp to px factor.
func (a *Attrs) Options(density float64) (*widget.RoundedBoxOptions, error) {
	if err := validate.Var(density, "gt=0"); err != nil {
		return nil, errors.Wrapf(err, "density %v", density)
	}

	opt := widget.DefaultRoundedBoxOptions()
	sc := &opt.Shape
	if a.BrushType != nil {
		sc.Mode = widget.BrushMode(*a.BrushType)
	}
	if a.Color != "" {
		c, err := imageutil.ParseColor(a.Color)
		if err != nil {
			return nil, errors.Wrap(err, "rc_color")
		}
		sc.Color = c
	}
	sc.StrokeWidth = a.StrokeSize.PixelsOr(density, sc.StrokeWidth)
	sc.CornerRadius = a.CornerRadius.PixelsOr(density, sc.CornerRadius)

	opt.Padding = a.Padding.pixels(density)

	if a.MinSize != "" {
		p, err := ParseSize(a.MinSize)
		if err != nil {
			return nil, errors.Wrap(err, "min_size")
		}
		opt.MinSize = p
	}
	return opt, nil
}

//----------

// Top, right, bottom, left.
type Padding [4]Dimension

func (p *Padding) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var d Dimension
		if err := n.Decode(&d); err != nil {
			return err
		}
		*p = Padding{d, d, d, d}
		return nil
	case yaml.SequenceNode:
		var u []Dimension
		if err := n.Decode(&u); err != nil {
			return err
		}
		if len(u) != 4 {
			return errors.Errorf("line %d: padding expects 4 values, got %d", n.Line, len(u))
		}
		copy(p[:], u)
		return nil
	}
	return errors.Errorf("line %d: bad padding", n.Line)
}

func (p Padding) pixels(density float64) widget.Padding {
	return widget.Padding{
		Top:    p[0].PixelsOr(density, 0),
		Right:  p[1].PixelsOr(density, 0),
		Bottom: p[2].PixelsOr(density, 0),
		Left:   p[3].PixelsOr(density, 0),
	}
}

//----------

// Parses "WxH".
func ParseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return image.Point{}, errors.Errorf("bad size: %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return image.Point{}, errors.Errorf("bad size width: %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return image.Point{}, errors.Errorf("bad size height: %q", s)
	}
	return image.Point{x, y}, nil
}
