package core

// Tag is the closed set of gameplay roles an entity can have
type Tag uint8

const (
	TagNone Tag = iota
	TagPlayer
	TagFoe
	TagCollectible
	TagBullet
	TagBound
)

// Tags lists every assignable tag in declaration order
var Tags = [...]Tag{TagPlayer, TagFoe, TagCollectible, TagBullet, TagBound}

func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagFoe:
		return "foe"
	case TagCollectible:
		return "collectible"
	case TagBullet:
		return "bullet"
	case TagBound:
		return "bound"
	default:
		return "none"
	}
}

// ParseTag resolves a tag name, false for unknown names
func ParseTag(name string) (Tag, bool) {
	for _, t := range Tags {
		if t.String() == name {
			return t, true
		}
	}
	return TagNone, false
}
