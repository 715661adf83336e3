package pictures

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale shrinks img proportionally so it is at most maxWidth pixels wide.
// Narrower images, and a maxWidth <= 0, leave img untouched.
func Scale(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
	return scaled
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Subregion returns the part of img inside rect. The result shares pixels
// with img when the image type supports it, and is a copy otherwise.
func Subregion(img image.Image, rect image.Rectangle) image.Image {
	rect = rect.Intersect(img.Bounds())

	if sub, ok := img.(subImager); ok {
		return sub.SubImage(rect)
	}

	region := image.NewRGBA(rect)
	draw.Draw(region, rect, img, rect.Min, draw.Src)
	return region
}
