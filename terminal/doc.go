// Package terminal adapts tcell screens and events to the playfield.
//
// A Viewport maps world units onto the cell grid left inside the border ring and above the HUD row.
// Mouse and key events are decoded here; the simulation only ever sees world-space pointer events
// and session intents.
package terminal
