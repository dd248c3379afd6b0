package physics

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/vmath"
)

// ContactStats summarizes one contact refresh
type ContactStats struct {
	Colliders int // Live colliders considered
	Filtered  int // Pairs rejected by the layer map
	Culled    int // Pairs rejected by bounding boxes
	Tested    int // Pairs reaching the narrow phase
	Touching  int // Overlapping pairs
}

type placed struct {
	entity core.Entity
	layer  core.Layer
	filter core.Layer
	shape  WorldShape
}

// RefreshContacts rebuilds every sensor's contact set from scratch
// The previous set is kept on the sensor for enter/exit diffs; pending entities take no part
func RefreshContacts(w *engine.World, layers LayerMap) ContactStats {
	var stats ContactStats

	colliders := make([]placed, 0, w.Components.Collider.CountEntities())
	for e, col := range w.Components.Collider.All() {
		if !w.IsAlive(e) {
			continue
		}
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		colliders = append(colliders, placed{
			entity: e,
			layer:  col.Layer,
			filter: layers.Filter(col.Layer),
			shape:  Place(col.Shape, tr),
		})
	}
	slices.SortFunc(colliders, func(a, b placed) int { return cmp.Compare(a.entity, b.entity) })
	stats.Colliders = len(colliders)

	sensors := make(map[core.Entity]*component.SensorComponent)
	for _, e := range w.Components.Sensor.GetAllEntities() {
		s, _ := w.Components.Sensor.GetComponent(e)
		next := component.SensorComponent{
			Contacts: make(map[core.Entity]component.Contact),
			Previous: s.Contacts,
		}
		if next.Previous == nil {
			next.Previous = make(map[core.Entity]component.Contact)
		}
		sensors[e] = &next
	}

	for i := range colliders {
		a := &colliders[i]
		for j := i + 1; j < len(colliders); j++ {
			b := &colliders[j]
			if a.filter&b.layer == 0 && b.filter&a.layer == 0 {
				stats.Filtered++
				continue
			}
			sa, aSense := sensors[a.entity]
			sb, bSense := sensors[b.entity]
			if !aSense && !bSense {
				continue
			}
			if !a.shape.Bounds.Overlaps(b.shape.Bounds) {
				stats.Culled++
				continue
			}
			stats.Tested++
			c, hit := Collide(a.shape, b.shape)
			if !hit {
				continue
			}
			stats.Touching++
			if aSense {
				sa.Contacts[b.entity] = c
			}
			if bSense {
				sb.Contacts[a.entity] = component.Contact{Normal: vmath.V2Scale(c.Normal, -1), Depth: c.Depth}
			}
		}
	}

	for e, s := range sensors {
		w.Components.Sensor.SetComponent(e, *s)
	}
	return stats
}
