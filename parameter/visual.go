package parameter

// Glyphs and colors handed to the renderer at spawn time
const (
	PlayerGlyph      = '@'
	PlayerColor      = 0x4FC3F7
	FoeGlyph         = 'A'
	FoeColor         = 0xEF5350
	CollectibleGlyph = '*'
	CollectibleColor = 0xFFD54F
	BulletGlyph      = 'o'
	BulletColor      = 0xFF8A65
	BoundGlyph       = '#'
	BoundColor       = 0x546E7A
)
