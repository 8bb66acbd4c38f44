// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// so they always match the runtime values.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
	F5         = tea.KeyPressMsg{Code: tea.KeyF5}.String()                         // "f5"
	F11        = tea.KeyPressMsg{Code: tea.KeyF11}.String()                        // "f11"
)

// Ctrl combinations
var (
	CtrlC          = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()                       // "ctrl+c"
	CtrlQ          = (tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}).String()                       // "ctrl+q"
	CtrlR          = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String()                       // "ctrl+r"
	CtrlB          = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String()                       // "ctrl+b"
	CtrlT          = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String()                       // "ctrl+t"
	CtrlL          = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String()                       // "ctrl+l"
	CtrlP          = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String()                       // "ctrl+p"
	CtrlY          = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String()                       // "ctrl+y"
	CtrlLeft       = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}).String()               // "ctrl+left"
	CtrlRight      = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}).String()              // "ctrl+right"
	CtrlShiftLeft  = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl | tea.ModShift}).String()  // "ctrl+shift+left"
	CtrlShiftRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl | tea.ModShift}).String() // "ctrl+shift+right"
)

// Alt combinations
var (
	AltY = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModAlt}).String() // "alt+y"
)
