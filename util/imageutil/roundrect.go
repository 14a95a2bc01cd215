package imageutil

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/roundcorner/util/mathutil"
	"golang.org/x/image/vector"
)

// Cubic bezier control distance for a quarter circle of radius 1.
const arcKappa = 0.5522847498

// Radius is limited to half of the smallest side. A zero radius draws a plain rectangle.
func FillRoundRectangle(img draw.Image, r image.Rectangle, radius int, c color.Color) {
	r = r.Canon()
	if r.Empty() || c == nil {
		return
	}
	radius = clampRadius(r, radius)
	rasterize(img, r, c, func(z *vector.Rasterizer, off image.Point) {
		roundRectPath(z, r.Sub(off), float32(radius), false)
	})
}

// The stroke is centered on r inset by width/2, so the outer edge is on r and the inner edge is r inset by width. With a radius, the outer corners use radius+width/2 and the inner corners radius-width/2 (same center). A zero radius gives square corners. Pixels inside the inner edge are not touched.
func StrokeRoundRectangle(img draw.Image, r image.Rectangle, radius, width int, c color.Color) {
	r = r.Canon()
	if r.Empty() || width <= 0 || c == nil {
		return
	}
	radius = clampRadius(r, radius)
	orad, irad := float32(0), float32(0)
	if radius > 0 {
		hw := float32(width) / 2
		orad = mathutil.Min(float32(radius)+hw, halfSide(r))
		irad = mathutil.NonNegative(float32(radius) - hw)
	}
	if r.Dx() <= 2*width || r.Dy() <= 2*width {
		// stroke covers everything
		rasterize(img, r, c, func(z *vector.Rasterizer, off image.Point) {
			roundRectPath(z, r.Sub(off), orad, false)
		})
		return
	}
	inner := r.Inset(width)
	irad = mathutil.Min(irad, halfSide(inner))
	rasterize(img, r, c, func(z *vector.Rasterizer, off image.Point) {
		roundRectPath(z, r.Sub(off), orad, false)
		// opposite winding cancels the coverage of the outer path
		roundRectPath(z, inner.Sub(off), irad, true)
	})
}

//----------

func clampRadius(r image.Rectangle, radius int) int {
	m := mathutil.Min(r.Dx(), r.Dy())
	return mathutil.Limit(radius, 0, m/2)
}

func halfSide(r image.Rectangle) float32 {
	return float32(mathutil.Min(r.Dx(), r.Dy())) / 2
}

// The rasterizer doesn't clip against the destination, so it is sized to the visible part of r and the path is translated accordingly.
func rasterize(img draw.Image, r image.Rectangle, c color.Color, path func(*vector.Rasterizer, image.Point)) {
	clip := r.Intersect(img.Bounds())
	if clip.Empty() {
		return
	}
	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	z.DrawOp = draw.Over
	path(z, clip.Min)
	z.Draw(img, clip, image.NewUniform(c), image.Point{})
}

func roundRectPath(z *vector.Rasterizer, r image.Rectangle, rad float32, reverse bool) {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	k := rad * arcKappa

	if rad == 0 {
		z.MoveTo(x0, y0)
		if reverse {
			z.LineTo(x0, y1)
			z.LineTo(x1, y1)
			z.LineTo(x1, y0)
		} else {
			z.LineTo(x1, y0)
			z.LineTo(x1, y1)
			z.LineTo(x0, y1)
		}
		z.ClosePath()
		return
	}

	z.MoveTo(x0+rad, y0)
	if reverse {
		// top-left, left, bottom-left, bottom, bottom-right, right, top-right
		z.CubeTo(x0+rad-k, y0, x0, y0+rad-k, x0, y0+rad)
		z.LineTo(x0, y1-rad)
		z.CubeTo(x0, y1-rad+k, x0+rad-k, y1, x0+rad, y1)
		z.LineTo(x1-rad, y1)
		z.CubeTo(x1-rad+k, y1, x1, y1-rad+k, x1, y1-rad)
		z.LineTo(x1, y0+rad)
		z.CubeTo(x1, y0+rad-k, x1-rad+k, y0, x1-rad, y0)
	} else {
		// top, top-right, right, bottom-right, bottom, bottom-left, left
		z.LineTo(x1-rad, y0)
		z.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
		z.LineTo(x1, y1-rad)
		z.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
		z.LineTo(x0+rad, y1)
		z.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
		z.LineTo(x0, y0+rad)
		z.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	}
	z.ClosePath()
}
