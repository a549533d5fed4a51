// Package layout provides a file-backed vista host.
//
// A layout file is a snapshot of the viewport and the bounds of named
// elements:
//
//	viewport_height: 800
//	elements:
//	  hero:
//	    top: 100
//	    bottom: 200
//
// Every write to the file is treated as a scroll: the snapshot is reloaded
// and a scroll signal is emitted, so a vista.Latch using a Host falls back
// to debounced polling.
package layout

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/vista"
)

// Layout is one snapshot of the viewport and element positions.
type Layout struct {
	ViewportHeight float64               `yaml:"viewport_height" json:"viewport_height" validate:"gte=0"`
	Elements       map[string]vista.Rect `yaml:"elements" json:"elements" validate:"required,min=1"`
}

var validate = validator.New()

// Validate checks field constraints and that no element is inverted.
func (l *Layout) Validate() error {
	if err := validate.Struct(l); err != nil {
		return err
	}
	for _, name := range l.Names() {
		if name == "" {
			return errors.New("element with empty name")
		}
		r := l.Elements[name]
		if r.Bottom < r.Top {
			return fmt.Errorf("element %q: bottom %v is above top %v", name, r.Bottom, r.Top)
		}
	}
	return nil
}

// Names returns the element names in sorted order.
func (l *Layout) Names() []string {
	names := make([]string, 0, len(l.Elements))
	for name := range l.Elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse decodes and validates a layout.
func Parse(data []byte, codec Codec) (*Layout, error) {
	if len(data) == 0 {
		return nil, errors.New("empty layout")
	}
	var l Layout
	if err := codec.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &l, nil
}

// Load reads, decodes and validates the layout file at path. The codec is
// chosen from the file extension.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return Parse(data, CodecFor(path))
}
