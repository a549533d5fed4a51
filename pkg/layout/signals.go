package layout

import "github.com/zoobzio/capitan"

var (
	// LayoutReloaded is emitted when a write produced a valid layout.
	LayoutReloaded = capitan.NewSignal(
		"vista.layout.reloaded",
		"Layout file reloaded",
	)

	// LayoutRejected is emitted when a write produced an invalid layout.
	// The previous layout stays active.
	LayoutRejected = capitan.NewSignal(
		"vista.layout.rejected",
		"Layout file rejected",
	)

	// KeyPath is the layout file path.
	KeyPath = capitan.NewStringKey("path")

	// KeyError is the reason a layout was rejected.
	KeyError = capitan.NewStringKey("error")

	// KeyElements is the number of elements in a reloaded layout.
	KeyElements = capitan.NewIntKey("elements")
)
