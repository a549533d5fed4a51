package vista

import "strconv"

// Rect is a snapshot of an element's edges relative to the top of the
// viewport. Positive values are below the viewport's top edge.
//
// Left and Right are carried so hosts can report full bounds; visibility
// is decided on the vertical axis only.
type Rect struct {
	Top    float64 `yaml:"top" json:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left,omitempty" json:"left,omitempty"`
	Right  float64 `yaml:"right,omitempty" json:"right,omitempty"`
}

// IsZero reports whether the rect sits at the origin with no extent, which
// hosts report for elements that have not been laid out yet.
func (r Rect) IsZero() bool {
	return r.Top == 0 && r.Bottom == 0
}

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// String returns a compact representation used in signal fields.
func (r Rect) String() string {
	return "top=" + strconv.FormatFloat(r.Top, 'f', -1, 64) +
		" bottom=" + strconv.FormatFloat(r.Bottom, 'f', -1, 64)
}

// CheckVisible reports whether region overlaps a viewport of the given
// height. A region is visible when its bottom edge is at or below the
// viewport's top and its top edge is at or above the viewport's bottom.
// An unlaid-out region (see Rect.IsZero) is never visible.
func CheckVisible(region Rect, viewportHeight float64) bool {
	if region.IsZero() {
		return false
	}
	return region.Bottom >= 0 && region.Top-viewportHeight <= 0
}
