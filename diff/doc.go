// Package diff renders frames by writing only what changed since the last frame.
//
// Trackers remember what is on screen at a fixed origin. A BlockTracker owns
// one RowTracker per row, which owns one CellTracker per column. Writes go
// through a Painter obtained from Canvas.Pass; for terminal output that is a
// Writer from Coalesce, which skips cursor moves between adjacent cells and
// color changes that would not alter anything.
//
// Lines and Line wrap the trackers for core.Lines and core.String on a
// terminal.Console.
//
// Nothing here is safe for concurrent use.
package diff
