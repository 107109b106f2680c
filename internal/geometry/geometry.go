package geometry

import "math"

// BaseFontSize is the reference font size in pixels used to convert natural
// pixel dimensions into em units.
const BaseFontSize = 16.0

// Size is a width/height pair in em units.
type Size struct {
	Width  float64
	Height float64
}

// FitImage scales an image's natural pixel dimensions to fit inside max
// (em units) while preserving aspect ratio.
//
// Height is fitted first, then width: an image scaled down to the available
// height may still overflow the width and needs a second pass, but never the
// reverse. The result never exceeds max in either axis.
func FitImage(naturalWidthPx, naturalHeightPx float64, max Size) Size {
	size := Size{
		Width:  naturalWidthPx / BaseFontSize,
		Height: naturalHeightPx / BaseFontSize,
	}

	if size.Height > max.Height {
		size.Width *= max.Height / size.Height
		size.Height = max.Height
	}
	if size.Width > max.Width {
		size.Height *= max.Width / size.Width
		size.Width = max.Width
	}

	return size
}

// AtFontSize converts a size computed at the 16px baseline into the target
// element's own em scale. Em units resolve against the element's computed
// font size, so an element styled at 12px needs larger em values to occupy
// the same pixels.
func AtFontSize(size Size, fontSizePx float64) Size {
	if fontSizePx <= 0 {
		return size
	}
	ratio := BaseFontSize / fontSizePx
	return Size{Width: size.Width * ratio, Height: size.Height * ratio}
}

// EmToPx converts em units at the baseline font size to pixels.
func EmToPx(em float64) float64 {
	return em * BaseFontSize
}

// PxToEm converts pixels to em units at the baseline font size.
func PxToEm(px float64) float64 {
	return px / BaseFontSize
}

// RoundPx rounds a pixel value to the nearest whole pixel.
func RoundPx(px float64) float64 {
	return math.Round(px)
}
