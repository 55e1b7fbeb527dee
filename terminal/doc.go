// Package terminal provides the console primitives the diff engine writes through.
//
// Three implementations of Console are provided:
//   - ANSIConsole emits ANSI sequences directly, optionally on a raw-mode tty
//   - ScreenConsole draws into a tcell.Screen
//   - MockConsole records operations in memory for tests
//
// Colors are tcell.Color values. ColorDefault means "not specified" and is never
// sent to the terminal; ColorReset selects the terminal's own default color.
package terminal
