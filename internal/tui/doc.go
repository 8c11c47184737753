// Package tui renders the ApoloNotes console: a bubbletea program over the
// resource stores and the identity gate.
//
// One root [appModel] owns a screen enum and a sub-model per screen. Key
// events route to the active screen's update function; remote work happens
// in tea.Cmd closures that settle back into typed messages. The auth gate
// decides which half of the screen set is reachable: while the session check
// is pending only the checking indicator renders, afterwards either the
// login/signup pair or the protected screens.
//
// Toasts arrive through the notification dispatcher. Run registers a handler
// that forwards every dispatch into the program as a message, so the adapter
// can notify from any goroutine without knowing the UI exists.
package tui
