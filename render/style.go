// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
)

// Style holds the palette used by Draw.
type Style struct {
	Background color.RGBA // cleared before drawing
	Fill       color.RGBA // cell fill at z == 0
	Outline    color.RGBA // cell outline and graph edges
	Center     color.RGBA // cell centers and their connections
	Point      color.RGBA // graph points at z == 0
	Text       color.RGBA // caption

	// ZGain is added to each fill channel per unit of z.
	ZGain int
}

// DefaultStyle is grey cells with dark red outlines on a transparent
// background.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{},
		Fill:       color.RGBA{R: 160, G: 160, B: 160, A: 255},
		Outline:    color.RGBA{R: 128, G: 0, B: 0, A: 255},
		Center:     color.RGBA{R: 255, G: 128, B: 128, A: 255},
		Point:      color.RGBA{R: 160, G: 160, B: 160, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ZGain:      2,
	}
}

// tint shifts the color channels of base by gain·z, clamped to a byte.
// Alpha is kept.
func tint(base color.RGBA, z, gain int) color.RGBA {
	shift := z * gain
	return color.RGBA{
		R: clampByte(int(base.R) + shift),
		G: clampByte(int(base.G) + shift),
		B: clampByte(int(base.B) + shift),
		A: base.A,
	}
}

func clampByte(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
