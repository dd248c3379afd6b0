package component

// AppearanceComponent is the draw descriptor handed to the renderer at spawn time
type AppearanceComponent struct {
	Glyph  rune
	Color  uint32 // 0xRRGGBB
	Filled bool   // Fill interior cells, otherwise outline only
}
