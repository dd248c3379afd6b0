package component

import (
	"slices"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/vmath"
)

// Contact describes an overlap seen from the sensor owner
type Contact struct {
	Normal vmath.Vec2 // Unit vector pointing from the other collider toward the owner
	Depth  float64    // Penetration along Normal
}

// SensorComponent holds the set of colliders touching the owner, rebuilt every fixed step
type SensorComponent struct {
	Contacts map[core.Entity]Contact
	Previous map[core.Entity]Contact
}

// NewSensor returns an empty sensor
func NewSensor() SensorComponent {
	return SensorComponent{
		Contacts: make(map[core.Entity]Contact),
		Previous: make(map[core.Entity]Contact),
	}
}

// Touching reports whether e is in the current contact set
func (s *SensorComponent) Touching(e core.Entity) bool {
	_, ok := s.Contacts[e]
	return ok
}

// ContactEntities returns current contacts in ascending id order
func (s *SensorComponent) ContactEntities() []core.Entity {
	return sortedKeys(s.Contacts)
}

// Entered returns contacts present now but not on the previous step
func (s *SensorComponent) Entered() []core.Entity {
	var out []core.Entity
	for _, e := range sortedKeys(s.Contacts) {
		if _, ok := s.Previous[e]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// Exited returns contacts present on the previous step but not now
func (s *SensorComponent) Exited() []core.Entity {
	var out []core.Entity
	for _, e := range sortedKeys(s.Previous) {
		if _, ok := s.Contacts[e]; !ok {
			out = append(out, e)
		}
	}
	return out
}

func sortedKeys(m map[core.Entity]Contact) []core.Entity {
	keys := make([]core.Entity, 0, len(m))
	for e := range m {
		keys = append(keys, e)
	}
	slices.Sort(keys)
	return keys
}
