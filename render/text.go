// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// captionFont is small enough for a one-line label on a 50px canvas.
var captionFont = &tinyfont.TomThumb

// captionPad is the gap between the text and the canvas edges.
const captionPad = 2

// Caption writes text on one line at the bottom-left corner of c.
func Caption(c *Canvas, text string, col color.RGBA) {
	if text == "" {
		return
	}
	_, h := c.Size()
	tinyfont.WriteLine(c, captionFont, captionPad, h-captionPad, text, col)
}

// CaptionWidth returns the pixel width of text in the caption font.
func CaptionWidth(text string) int {
	_, outbox := tinyfont.LineWidth(captionFont, text)
	return int(outbox)
}
