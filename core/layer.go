package core

import "strings"

// Layer is a collision category bitmask, one bit per category
type Layer uint32

const (
	LayerPlayer Layer = 1 << iota
	LayerCollectible
	LayerFoe
	LayerBullet
	LayerBound
)

// LayerAll matches every category
const LayerAll Layer = ^Layer(0)

var layerNames = [...]struct {
	layer Layer
	name  string
}{
	{LayerPlayer, "player"},
	{LayerCollectible, "collectible"},
	{LayerFoe, "foe"},
	{LayerBullet, "bullet"},
	{LayerBound, "bound"},
}

// Has reports whether any bit of other is set in l
func (l Layer) Has(other Layer) bool {
	return l&other != 0
}

func (l Layer) String() string {
	if l == 0 {
		return "none"
	}
	var parts []string
	for _, ln := range layerNames {
		if l&ln.layer != 0 {
			parts = append(parts, ln.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
