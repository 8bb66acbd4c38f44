// Package session coordinates one codepad session.
//
// # Overview
//
// A Session wires the layout state machine, the theme and fullscreen
// state, and the execution and chat controllers to the editor. Input
// adapters call Session methods; they never reach into the controllers
// to change state.
//
// # Cross-cutting effects
//
//   - Any geometry change (drag update, drag end, panel toggle, nudge,
//     viewport resize) calls Editor.Layout so the editor resizes its
//     canvas to the new bounds.
//   - Any theme change calls Editor.SetTheme with "vs" or "vs-dark".
//   - Selecting a language calls Editor.SetModelLanguage and loads the
//     language's starter snippet with Editor.SetValue.
//
// # Requests
//
// Runs and chat messages go through three steps:
//
//  1. StartRun / SendChat, on the UI loop, read the editor and return a ticket.
//  2. PerformRun / PerformChat do the HTTP exchange and may run anywhere.
//  3. ApplyRun / ApplyChat, back on the UI loop, settle the result.
//
// The only state a Session keeps of its own is the selected language.
package session
