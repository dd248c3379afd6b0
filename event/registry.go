package event

import (
	"reflect"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a signal name to an EventType and its payload struct type
// payloadInstance may be a value or pointer to the payload struct
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a signal name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the signal name for an EventType, empty if unregistered
func GetEventName(et EventType) string {
	InitRegistry()
	return typeToName[et]
}

// PayloadType returns the registered payload type for et
func PayloadType(et EventType) (reflect.Type, bool) {
	InitRegistry()
	t, ok := typeToPayload[et]
	return t, ok
}

// InitRegistry populates the registry with the signal catalog, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("item-collected", EventItemCollected, ItemCollectedPayload{})
		RegisterType("entity-removed", EventEntityRemoved, EntityRemovedPayload{})
		RegisterType("entity-spawned", EventEntitySpawned, EntitySpawnedPayload{})
		RegisterType("foe-fired", EventFoeFired, FoeFiredPayload{})
		RegisterType("game-over", EventGameOver, GameOverPayload{})
		RegisterType("scene-reset", EventSceneReset, SceneResetPayload{})
	})
}

func (et EventType) String() string {
	if name := GetEventName(et); name != "" {
		return name
	}
	return "unknown"
}
