// Package viz provides the terminal view of a sort animation.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view of one session, with counters and charts
//   - [Canvas]: Braille-based pixel canvas that serves as a bars.Surface
//   - Engine menu and run settings via [RunInteractive]
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// The view can record the animation as a GIF using the G key. Recordings
// are saved to the current directory, named after the run.
package viz
