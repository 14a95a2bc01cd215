package widget

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Single line text.
type Label struct {
	ENode
	Text  string
	Color color.Color
	Face  font.Face // nil uses the default face

	ctx ImageContext
}

func NewLabel(ctx ImageContext, text string) *Label {
	return &Label{ctx: ctx, Text: text, Color: color.Black}
}

func (l *Label) SetText(s string) {
	l.Text = s
	l.MarkNeedsLayoutAndPaint()
}

func (l *Label) face() font.Face {
	if l.Face != nil {
		return l.Face
	}
	return DefaultFontFace()
}

func (l *Label) Measure(hint image.Point) image.Point {
	face := l.face()
	m := face.Metrics()
	w := font.MeasureString(face, l.Text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	return image.Point{w, h}
}

func (l *Label) Paint() {
	if l.Text == "" || l.Color == nil {
		return
	}
	face := l.face()
	d := &font.Drawer{
		Dst:  clipImage(l.ctx.Image(), l.Bounds),
		Src:  image.NewUniform(l.Color),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(l.Bounds.Min.X),
			Y: fixed.I(l.Bounds.Min.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(l.Text)
}

//----------

var defaultFace font.Face

func DefaultFontFace() font.Face {
	if defaultFace == nil {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			panic(err)
		}
		opt := &truetype.Options{Size: 14, Hinting: font.HintingFull}
		defaultFace = truetype.NewFace(f, opt)
	}
	return defaultFace
}
