// Package ui provides the user interface components for the codepad TUI.
//
// # Overview
//
// The ui package implements the visual components of codepad using the Bubble Tea
// framework and Lipgloss styling library. Components hold view state only; the
// session package owns behavior and the app package wires the two together.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Header (1 line)                                              │
//	├──────────────────┬─┬──────────────────┬─┬────────────────────┤
//	│                  │ │                  │ │                    │
//	│   Editor         │││   Console        │││   Assistant        │
//	│                  │ │   stdin / output │ │   (collapsible)    │
//	│                  │ │                  │ │                    │
//	├──────────────────┴─┴──────────────────┴─┴────────────────────┤
//	│ Footer (1 line)                                              │
//	└──────────────────────────────────────────────────────────────┘
//	                    ^                    ^
//	                 splitter             resizer
//
// Column widths come from the layout package. Rows come from ViewContext.
//
// # Components
//
// Editor: the code buffer. A textarea while focused, chroma-highlighted
// text otherwise. It implements the session's Editor interface.
//
// Console: stdin box, run button and the output of the last run.
//
// Assistant: the chat history and message input. Replies are laid out
// from chat.Rendered segments with code blocks highlighted.
//
// Header and Footer: title with indicators, and context-aware key hints
// that a flash message can temporarily replace.
//
// Modal: popup dialogs, currently the language picker.
//
// # Styles
//
// All styles are regenerated from the active palette in styles.go. There are
// two palettes, light and dark, matching the "vs" and "vs-dark" editor themes.
package ui
