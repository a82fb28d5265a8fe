package memlcd

import "image"

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// swapsAxes reports whether logical x runs along the panel's y axis.
func (r Rotation) swapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// bounds of the logical coordinate system on a width x height panel.
func (r Rotation) bounds(width, height int) image.Rectangle {
	if r.swapsAxes() {
		return image.Rect(0, 0, height, width)
	}
	return image.Rect(0, 0, width, height)
}

// transform maps logical (x, y) to panel coordinates. It does not check bounds; for any
// point inside r.bounds(width, height) the result is inside the panel.
func transform(x, y int, r Rotation, width, height int) (int, int) {
	switch r {
	case Rotate90:
		x, y = y, x
		x = width - 1 - x
	case Rotate180:
		x = width - 1 - x
		y = height - 1 - y
	case Rotate270:
		x, y = y, x
		y = height - 1 - y
	}
	return x, y
}
