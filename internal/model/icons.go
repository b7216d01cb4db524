package model

// Markers shown next to a command in the review screen.
// Single-width characters keep the layout stable across terminals.
const (
	IconRoot     = "#" // runs with elevated privileges
	IconUser     = "$" // runs as the invoking user
	IconDelegate = "→" // handed to the AUR helper
	IconAbort    = "✗"
	IconConfirm  = "✓"
)
