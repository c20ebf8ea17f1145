package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGrid          // board lines
	ColorMuted         // hints and secondary text
	ColorTitle
	ColorOverlay // win/lose/pause boxes

	// Tile colors, one per value band.
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // anything above 2048
)

// TileColor returns the color band for a tile value.
func TileColor(value int) Color {
	c := ColorTile2
	for v := 2; v < value && c < ColorTileSuper; v *= 2 {
		c++
	}
	return c
}
