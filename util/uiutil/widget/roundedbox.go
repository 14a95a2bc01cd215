package widget

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/jmigpin/roundcorner/util/imageutil"
	"github.com/jmigpin/roundcorner/util/mathutil"
	"github.com/rs/zerolog"
)

type Padding struct {
	Top, Right, Bottom, Left int
}

func PaddingAll(v int) Padding {
	return Padding{v, v, v, v}
}

func (p Padding) size() image.Point {
	return image.Point{p.Left + p.Right, p.Top + p.Bottom}
}

//----------

type RoundedBoxOptions struct {
	Shape   ShapeConfig
	Padding Padding

	// Optional minimum size used to compute the shape bounds. Zero values disable the clamping on that axis.
	MinSize image.Point

	Logger *zerolog.Logger // nil discards
}

func DefaultRoundedBoxOptions() *RoundedBoxOptions {
	return &RoundedBoxOptions{Shape: DefaultShapeConfig()}
}

//----------

// Container that paints a rounded rectangle (stroked or filled) behind its childs. Childs are laid out inside the padded area.
type RoundedBox struct {
	ENode
	ctx ImageContext
	log zerolog.Logger

	cfg     ShapeConfig
	padding Padding
	minSize image.Point

	shape *RoundedShape
	rect  image.Rectangle // shape bounds, local coordinates

	size  image.Point // size seen on the last layout
	sized bool
}

func NewRoundedBox(ctx ImageContext, opt *RoundedBoxOptions) *RoundedBox {
	if opt == nil {
		opt = DefaultRoundedBoxOptions()
	}
	rb := &RoundedBox{
		ctx:     ctx,
		log:     zerolog.Nop(),
		cfg:     opt.Shape,
		padding: opt.Padding,
		minSize: opt.MinSize,
	}
	if opt.Logger != nil {
		rb.log = opt.Logger.With().Str("node", "roundedbox").Logger()
	}
	rb.shape = NewRoundedShape(rb.cfg)
	return rb
}

//----------

func (rb *RoundedBox) ShapeConfig() ShapeConfig {
	return rb.cfg
}
func (rb *RoundedBox) Shape() *RoundedShape {
	return rb.shape
}

// Shape bounds relative to the node origin.
func (rb *RoundedBox) BoundsRect() image.Rectangle {
	return rb.rect
}

func (rb *RoundedBox) Padding() Padding {
	return rb.padding
}
func (rb *RoundedBox) SetPadding(p Padding) {
	rb.padding = p
	rb.sized = false // recompute shape bounds on next layout
	rb.MarkNeedsLayoutAndPaint()
}

//----------

func (rb *RoundedBox) Measure(hint image.Point) image.Point {
	ps := rb.padding.size()
	h := imageutil.MaxPoint(hint.Sub(ps), image.Point{0, 0})
	m := rb.ENode.Measure(h)
	m = imageutil.MinPoint(m.Add(ps), hint)
	rb.log.Trace().
		Stringer("hint", hint).
		Stringer("measure", m).
		Msg("measure")
	return m
}

func (rb *RoundedBox) Layout() {
	size := rb.Bounds.Size()
	if !rb.sized || size != rb.size {
		old := rb.size
		rb.size, rb.sized = size, true
		rb.OnSizeChanged(size, old)
	}

	// childs bounds inside padding
	u := rb.Bounds
	u.Min = u.Min.Add(image.Point{rb.padding.Left, rb.padding.Top})
	u.Max = u.Max.Sub(image.Point{rb.padding.Right, rb.padding.Bottom})
	u = u.Intersect(rb.Bounds)
	rb.Iterate2(func(c *EmbedNode) {
		if !c.HasAnyMarks(MarkForceZeroBounds) {
			c.Bounds = u
		}
	})
}

// Recomputes the shape bounds from the size minus the padding. Doesn't request a paint.
func (rb *RoundedBox) OnSizeChanged(size, oldSize image.Point) {
	// zero min size values don't change anything
	w := mathutil.Max(size.X, rb.minSize.X)
	h := mathutil.Max(size.Y, rb.minSize.Y)

	p := rb.padding
	r := image.Rectangle{
		Min: image.Point{p.Left, p.Top},
		Max: image.Point{w - p.Right, h - p.Bottom},
	}
	r.Max.X = mathutil.Max(r.Max.X, r.Min.X)
	r.Max.Y = mathutil.Max(r.Max.Y, r.Min.Y)
	rb.rect = r
	rb.shape.SetBounds(r)

	rb.log.Trace().
		Stringer("size", size).
		Stringer("oldSize", oldSize).
		Stringer("rect", r).
		Msg("size changed")
}

// A child paint also repaints the box, the shape doesn't cover all of the bounds.
func (rb *RoundedBox) OnChildMarked(child Node, newMarks Marks) {
	if newMarks.HasAny(MarkNeedsPaint) {
		rb.MarkNeedsPaint()
	}
}

//----------

// Shape is painted here; childs are painted after, on top.
func (rb *RoundedBox) Paint() {
	img := clipImage(rb.ctx.Image(), rb.Bounds)
	rb.shape.Draw(img, rb.Bounds.Min)
	rb.log.Trace().
		Stringer("bounds", rb.Bounds).
		Stringer("brush", brushStringer{rb.shape.Brush()}).
		Int("radius", rb.shape.Radius()).
		Msg("paint")
}

//----------

type subImager interface {
	SubImage(image.Rectangle) image.Image
}

// Restricts drawing to r if the image supports it.
func clipImage(img draw.Image, r image.Rectangle) draw.Image {
	if si, ok := img.(subImager); ok {
		if u, ok := si.SubImage(r).(draw.Image); ok {
			return u
		}
	}
	return img
}

//----------

type brushStringer struct{ b Brush }

func (bs brushStringer) String() string {
	switch t := bs.b.(type) {
	case StrokeBrush:
		return fmt.Sprintf("stroke(%d, %s)", t.Width, imageutil.SprintRGB(t.Color))
	case FillBrush:
		return fmt.Sprintf("fill(%s)", imageutil.SprintRGB(t.Color))
	}
	return "?"
}
