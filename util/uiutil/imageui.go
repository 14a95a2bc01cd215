package uiutil

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/roundcorner/util/imageutil"
	"github.com/jmigpin/roundcorner/util/uiutil/widget"
	"github.com/rs/zerolog"
)

// Offscreen host for a widget tree. Not safe for concurrent use: all calls are expected from the same goroutine, like a window event loop.
type ImageUI struct {
	RootNode widget.Node
	Bg       color.Color // cleared before painting the root, nil clears to transparent

	img *image.RGBA
	log zerolog.Logger
}

func NewImageUI(log *zerolog.Logger) *ImageUI {
	ui := &ImageUI{
		img: image.NewRGBA(image.Rectangle{}),
		log: zerolog.Nop(),
	}
	if log != nil {
		ui.log = *log
	}
	return ui
}

// Implements widget.ImageContext
func (ui *ImageUI) Image() draw.Image {
	return ui.img
}

func (ui *ImageUI) RGBA() *image.RGBA {
	return ui.img
}

func (ui *ImageUI) SetRoot(n widget.Node) {
	ui.RootNode = n
	n.Embed().SetWrapperForRoot(n)
	ui.updateRootBounds()
}

// Allocates a new image and marks the tree for layout and paint.
func (ui *ImageUI) Resize(size image.Point) {
	size = imageutil.MaxPoint(size, image.Point{})
	if ui.img.Bounds().Size() == size {
		return
	}
	ui.img = image.NewRGBA(image.Rectangle{Max: size})
	ui.log.Debug().Stringer("size", size).Msg("resize")
	ui.updateRootBounds()
}

func (ui *ImageUI) updateRootBounds() {
	if ui.RootNode == nil {
		return
	}
	en := ui.RootNode.Embed()
	en.Bounds = ui.img.Bounds()
	en.MarkNeedsLayoutAndPaint()
}

// Returns the union of the painted rectangles.
func (ui *ImageUI) PaintIfNeeded() (image.Rectangle, bool) {
	if ui.RootNode == nil {
		return image.Rectangle{}, false
	}
	en := ui.RootNode.Embed()
	if en.TreeNeedsLayout() {
		en.LayoutMarked()
	}
	if !en.TreeNeedsPaint() {
		return image.Rectangle{}, false
	}
	if en.HasAnyMarks(widget.MarkNeedsPaint) {
		bg := ui.Bg
		if bg == nil {
			bg = imageutil.Transparent
		}
		imageutil.FillRectangle(ui.img, ui.img.Bounds(), bg)
	}
	r := en.PaintMarked()
	ui.log.Debug().Stringer("rect", r).Msg("painted")
	return r, !r.Empty()
}
