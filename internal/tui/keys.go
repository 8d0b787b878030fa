package tui

// Key bindings, as reported by tea.KeyMsg.String().
const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyRetry     = "r"
	keyEnter     = "enter"
	keyTab       = "tab"
	keyShiftTab  = "shift+tab"
	keyBackspace = "backspace"
	keyEsc       = "esc"
)

const (
	helpSuccess = "[tab] Select similar job  [enter] Open  [backspace] Back  [↑↓/jk] Scroll  [q] Quit"
	helpFailure = "[r] Retry  [backspace] Back  [q] Quit"
	helpLoading = "[backspace] Back  [q] Quit"
)
