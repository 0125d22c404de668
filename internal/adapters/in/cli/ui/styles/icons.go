package styles

// Status markers. Plain unicode so they render without patched fonts.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
	IconUnknown = "?"
	IconBullet  = "▸"
)
