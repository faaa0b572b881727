// Package viz is the interactive terminal front end for heatlife.
//
// The grid is drawn with half-block characters so that each terminal cell
// shows two simulation cells, colored with the heat palette. A side panel
// tracks the generation clock, population and load progress.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	S     - Single step while paused
//	R     - Reseed and restart at generation 1
//	T     - Cycle panel themes
//	?     - Show help overlay
//	Q     - Quit (back to the preset menu when opened from it)
//
// Once the generation ceiling is reached the tick loop stops for good and
// the final frame stays on screen until the simulation is reset.
package viz
