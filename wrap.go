package vista

// Props is what a wrapped renderer receives: the caller's own inputs plus
// the latch's visibility flag.
type Props[P any] struct {
	Props   P
	Visible bool
}

// Wrapped is a renderer augmented with a Latch.
type Wrapped[P, R any] struct {
	latch  *Latch
	render func(Props[P]) R
}

// Wrap composes render with latch. Each Render passes the latch's current
// visibility through to render alongside the caller's props.
func Wrap[P, R any](latch *Latch, render func(Props[P]) R) *Wrapped[P, R] {
	return &Wrapped[P, R]{latch: latch, render: render}
}

// Render renders with the current visibility flag.
func (w *Wrapped[P, R]) Render(props P) R {
	return w.render(Props[P]{Props: props, Visible: w.latch.Visible()})
}

// Latch returns the underlying latch.
func (w *Wrapped[P, R]) Latch() *Latch {
	return w.latch
}
