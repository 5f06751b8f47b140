package palette

// ContrastCurve anchors a token's tone at four contrast levels: -1.0
// (reduced), 0.0 (standard), 0.5 (medium) and 1.0 (high). Levels in
// between are linearly interpolated; levels outside the range clamp to
// the nearest anchor.
type ContrastCurve struct {
	Low    float64
	Normal float64
	Medium float64
	High   float64
}

// Get returns the tone for the requested contrast level.
func (c ContrastCurve) Get(level float64) float64 {
	switch {
	case level <= -1:
		return c.Low
	case level < 0:
		return lerp(c.Low, c.Normal, 1+level)
	case level < 0.5:
		return lerp(c.Normal, c.Medium, 2*level)
	case level < 1:
		return lerp(c.Medium, c.High, 2*(level-0.5))
	default:
		return c.High
	}
}

func lerp(start, stop, amount float64) float64 {
	return start + (stop-start)*amount
}

// flat is a curve that ignores the contrast level entirely.
func flat(tone float64) ContrastCurve {
	return ContrastCurve{Low: tone, Normal: tone, Medium: tone, High: tone}
}

// curve spells out all four anchors.
func curve(low, normal, medium, high float64) ContrastCurve {
	return ContrastCurve{Low: low, Normal: normal, Medium: medium, High: high}
}
