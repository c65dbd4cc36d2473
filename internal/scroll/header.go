package scroll

// IntroView is the "selected works" header shown in the first segment.
type IntroView struct {
	Opacity float64 `json:"opacity"`
	Scale   float64 `json:"scale"`
	OffsetY float64 `json:"offset_y"`
}

// IntroState returns the header's state at progress.
func IntroState(l Layout, progress float64) IntroView {
	step := l.Step()
	return IntroView{
		Opacity: Keyframes{In: []float64{0, step - gridLeadIn}, Out: []float64{1, 0}}.At(progress),
		Scale:   Keyframes{In: []float64{0, step}, Out: []float64{1, 0.8}}.At(progress),
		OffsetY: Keyframes{In: []float64{0, step}, Out: []float64{0, -100}}.At(progress),
	}
}
