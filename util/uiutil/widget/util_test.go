package widget

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/jmigpin/roundcorner/util/imageutil"
)

type testCtx struct {
	img *image.RGBA
}

func newTestCtx(w, h int) *testCtx {
	return &testCtx{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (ctx *testCtx) Image() draw.Image {
	return ctx.img
}

//----------

// Fills its bounds with a color.
type fillNode struct {
	ENode
	Size  image.Point
	Color color.Color
	ctx   ImageContext
}

func (n *fillNode) Measure(hint image.Point) image.Point {
	return n.Size
}
func (n *fillNode) Paint() {
	imageutil.FillRectangle(n.ctx.Image(), n.Bounds, n.Color)
}

//----------

func layoutAndPaint(n Node, r image.Rectangle) {
	en := n.Embed()
	en.SetWrapperForRoot(n)
	en.Bounds = r
	en.MarkNeedsLayoutAndPaint()
	en.LayoutMarked()
	en.PaintMarked()
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.Color) {
	t.Helper()
	got := imageutil.RgbaColor(img.At(x, y))
	w := imageutil.RgbaColor(want)
	d := func(u, v uint8) bool {
		k := int(u) - int(v)
		return k >= -2 && k <= 2
	}
	if !(d(got.R, w.R) && d(got.G, w.G) && d(got.B, w.B) && d(got.A, w.A)) {
		t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, w)
	}
}
