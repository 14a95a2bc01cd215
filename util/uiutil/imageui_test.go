package uiutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmigpin/roundcorner/util/imageutil"
	"github.com/jmigpin/roundcorner/util/uiutil/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageUIPaint(t *testing.T) {
	ui := NewImageUI(nil)
	rb := widget.NewRoundedBox(ui, nil)
	ui.SetRoot(rb)
	ui.Resize(image.Point{200, 100})

	r, ok := ui.PaintIfNeeded()
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 200, 100), r)
	assert.Equal(t, image.Rect(0, 0, 200, 100), rb.BoundsRect())

	img := ui.RGBA()
	assert.Equal(t, imageutil.DarkGray, img.RGBAAt(2, 50))
	assert.Equal(t, imageutil.Transparent, img.RGBAAt(100, 50))

	// nothing to do
	_, ok = ui.PaintIfNeeded()
	assert.False(t, ok)
}

func TestImageUIResize(t *testing.T) {
	ui := NewImageUI(nil)
	opt := widget.DefaultRoundedBoxOptions()
	opt.Padding = widget.PaddingAll(4)
	rb := widget.NewRoundedBox(ui, opt)
	ui.SetRoot(rb)

	ui.Resize(image.Point{100, 50})
	ui.PaintIfNeeded()
	assert.Equal(t, image.Rect(4, 4, 96, 46), rb.BoundsRect())

	ui.Resize(image.Point{300, 80})
	_, ok := ui.PaintIfNeeded()
	assert.True(t, ok)
	assert.Equal(t, image.Rect(4, 4, 296, 76), rb.BoundsRect())
	assert.Equal(t, image.Rect(0, 0, 300, 80), ui.Image().Bounds())

	// same size keeps the image
	img := ui.RGBA()
	ui.Resize(image.Point{300, 80})
	assert.Same(t, img, ui.RGBA())

	// negative sizes
	ui.Resize(image.Point{-1, -1})
	assert.True(t, ui.Image().Bounds().Empty())
}

func TestImageUIBackground(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	ui := NewImageUI(nil)
	ui.Bg = white
	rb := widget.NewRoundedBox(ui, nil)
	ui.SetRoot(rb)
	ui.Resize(image.Point{60, 60})
	ui.PaintIfNeeded()

	img := ui.RGBA()
	assert.Equal(t, white, img.RGBAAt(30, 30))
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, imageutil.DarkGray, img.RGBAAt(2, 30))
}

func TestImageUINoRoot(t *testing.T) {
	ui := NewImageUI(nil)
	ui.Resize(image.Point{10, 10})
	_, ok := ui.PaintIfNeeded()
	assert.False(t, ok)
}

func TestImageUIChildRepaint(t *testing.T) {
	blue := color.RGBA{0, 0, 255, 255}
	ui := NewImageUI(nil)
	opt := widget.DefaultRoundedBoxOptions()
	opt.Shape = widget.ShapeConfig{CornerRadius: 10, Mode: widget.BrushFill, Color: blue}
	opt.Padding = widget.PaddingAll(10)
	rb := widget.NewRoundedBox(ui, opt)
	l := widget.NewLabel(ui, "WWWWWWWW")
	rb.Append(l)
	ui.SetRoot(rb)
	ui.Resize(image.Point{200, 100})
	ui.PaintIfNeeded()

	// away from the rounded corners
	area := image.Rect(20, 10, 180, 90)
	countNotBlue := func() int {
		n := 0
		img := ui.RGBA()
		for y := area.Min.Y; y < area.Max.Y; y++ {
			for x := area.Min.X; x < area.Max.X; x++ {
				if img.RGBAAt(x, y) != blue {
					n++
				}
			}
		}
		return n
	}
	require.Greater(t, countNotBlue(), 0)

	l.SetText("")
	_, ok := ui.PaintIfNeeded()
	require.True(t, ok)
	assert.Equal(t, 0, countNotBlue())
}

func TestImageUIChildRepaintStroke(t *testing.T) {
	ui := NewImageUI(nil)
	rb := widget.NewRoundedBox(ui, nil)
	l := widget.NewLabel(ui, "WWWWWWWW")
	rb.Append(l)
	ui.SetRoot(rb)
	ui.Resize(image.Point{200, 100})
	ui.PaintIfNeeded()

	// inside the stroke
	area := image.Rect(10, 10, 190, 90)
	countPainted := func() int {
		n := 0
		img := ui.RGBA()
		for y := area.Min.Y; y < area.Max.Y; y++ {
			for x := area.Min.X; x < area.Max.X; x++ {
				if img.RGBAAt(x, y) != imageutil.Transparent {
					n++
				}
			}
		}
		return n
	}
	require.Greater(t, countPainted(), 0)

	l.SetText("")
	_, ok := ui.PaintIfNeeded()
	require.True(t, ok)
	assert.Equal(t, 0, countPainted())
	assert.Equal(t, imageutil.DarkGray, ui.RGBA().RGBAAt(2, 50))
}
