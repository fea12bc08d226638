// Package textmeasure bridges font metrics into the layout engine: it
// turns a font face and a string into a [layout.MeasureFunc] that
// reports the text's intrinsic size under greedy word wrapping.
package textmeasure

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-layout"
)

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Text returns a measure function for the given string rendered with
// face. Width hypotheses map onto wrapping: a definite width wraps
// greedily at that width, max-content lays the whole text on one line,
// and min-content wraps at the widest single word. Height is the line
// count times the face's line height. Dimensions already fixed by the
// caller are returned as-is.
//
// The face must remain valid for as long as the measure function is
// installed, and faces are not safe for concurrent use.
func Text(face font.Face, text string) layout.MeasureFunc {
	return func(known layout.Size[layout.Maybe], available layout.Size[layout.AvailableSpace]) layout.Size[float32] {
		if w, wok := known.Width.Value(); wok {
			if h, hok := known.Height.Value(); hok {
				return layout.Size[float32]{Width: w, Height: h}
			}
		}

		words := strings.Fields(text)
		if len(words) == 0 {
			return layout.Size[float32]{}
		}

		lineHeight := toFloat(face.Metrics().Height)
		spaceWidth := toFloat(font.MeasureString(face, " "))
		widths := make([]float32, len(words))
		var widest float32
		for i, word := range words {
			widths[i] = toFloat(font.MeasureString(face, word))
			widest = max(widest, widths[i])
		}

		// The wrapping limit: a caller-known width wins, then a definite
		// offer, then the intrinsic mode.
		limit := layout.None()
		widthSpace := available.Width.OrDefinite(known.Width)
		if v, ok := widthSpace.ToMaybe().Value(); ok {
			limit = layout.Some(v)
		} else if widthSpace == layout.MinContent() {
			limit = layout.Some(widest)
		}

		var maxLine, line float32
		lines := 1
		for i, w := range widths {
			if i == 0 {
				line = w
				continue
			}
			next := line + spaceWidth + w
			if lim, ok := limit.Value(); ok && next > lim {
				maxLine = max(maxLine, line)
				lines++
				line = w
				continue
			}
			line = next
		}
		maxLine = max(maxLine, line)

		return layout.Size[float32]{
			Width:  known.Width.Or(maxLine),
			Height: known.Height.Or(lineHeight * float32(lines)),
		}
	}
}
