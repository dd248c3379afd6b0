package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the frame chrome; entity colors come from their appearance
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbHUDText    = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbHUDScore   = tcell.NewRGBColor(255, 213, 79)  // Amber, matches collectibles
	RgbPaused     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbGameOver   = tcell.NewRGBColor(239, 83, 80)   // Foe red
	RgbMuted      = tcell.NewRGBColor(120, 120, 120) // Dim gray
)

// RGB converts a packed 0xRRGGBB value to a tcell color
func RGB(c uint32) tcell.Color {
	return tcell.NewRGBColor(int32(c>>16&0xFF), int32(c>>8&0xFF), int32(c&0xFF))
}
