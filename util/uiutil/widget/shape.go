package widget

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/roundcorner/util/imageutil"
	"github.com/jmigpin/roundcorner/util/mathutil"
)

// Values match the attribute values (stroke=1, fill=0).
type BrushMode int

const (
	BrushFill   BrushMode = 0
	BrushStroke BrushMode = 1
)

func (m BrushMode) String() string {
	switch m {
	case BrushFill:
		return "fill"
	case BrushStroke:
		return "stroke"
	default:
		return fmt.Sprintf("brushmode(%d)", int(m))
	}
}

//----------

const (
	DefaultStrokeWidth  = 5
	DefaultCornerRadius = 10
)

type ShapeConfig struct {
	CornerRadius int // pixels, 0 is a plain rectangle
	StrokeWidth  int // pixels, ignored in fill mode
	Mode         BrushMode
	Color        color.Color // stroke color or fill color depending on the mode
}

func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		CornerRadius: DefaultCornerRadius,
		StrokeWidth:  DefaultStrokeWidth,
		Mode:         BrushStroke,
		Color:        imageutil.DarkGray,
	}
}

// Unknown modes fall back to stroke.
func (cfg ShapeConfig) Brush() Brush {
	c := cfg.Color
	if c == nil {
		c = imageutil.DarkGray
	}
	if cfg.Mode == BrushFill {
		return FillBrush{Color: c}
	}
	return StrokeBrush{Width: mathutil.NonNegative(cfg.StrokeWidth), Color: c}
}

//----------

// Either a StrokeBrush or a FillBrush.
type Brush interface {
	isBrush()
}

type StrokeBrush struct {
	Width int
	Color color.Color
}

type FillBrush struct {
	Color color.Color
}

func (StrokeBrush) isBrush() {}
func (FillBrush) isBrush()   {}

//----------

// Rounded rectangle drawable. Bounds are relative to the offset given to Draw.
type RoundedShape struct {
	radius int
	brush  Brush
	bounds image.Rectangle
}

func NewRoundedShape(cfg ShapeConfig) *RoundedShape {
	return &RoundedShape{
		radius: mathutil.NonNegative(cfg.CornerRadius),
		brush:  cfg.Brush(),
	}
}

func (s *RoundedShape) SetBounds(r image.Rectangle) {
	s.bounds = r
}
func (s *RoundedShape) Bounds() image.Rectangle {
	return s.bounds
}
func (s *RoundedShape) Radius() int {
	return s.radius
}
func (s *RoundedShape) Brush() Brush {
	return s.brush
}

// Zero in fill mode.
func (s *RoundedShape) StrokeWidth() int {
	if b, ok := s.brush.(StrokeBrush); ok {
		return b.Width
	}
	return 0
}

// Nil in stroke mode (transparent interior).
func (s *RoundedShape) FillColor() color.Color {
	if b, ok := s.brush.(FillBrush); ok {
		return b.Color
	}
	return nil
}

// Nil in fill mode (no outline).
func (s *RoundedShape) StrokeColor() color.Color {
	if b, ok := s.brush.(StrokeBrush); ok {
		return b.Color
	}
	return nil
}

func (s *RoundedShape) Draw(img draw.Image, off image.Point) {
	r := s.bounds.Add(off)
	switch b := s.brush.(type) {
	case FillBrush:
		imageutil.FillRoundRectangle(img, r, s.radius, b.Color)
	case StrokeBrush:
		imageutil.StrokeRoundRectangle(img, r, s.radius, b.Width, b.Color)
	}
}
