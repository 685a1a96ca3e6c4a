package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionToggleHelp
	ActionOpenSearch
	ActionSearchNext
	ActionSearchPrevious
	ActionReplaceCurrent
	ActionReplaceAll
	ActionSave
	ActionReload
	ActionToggleWrap
	ActionMoveUp
	ActionMoveDown
	ActionGoToTop
	ActionGoToBottom
	ActionPageDown
	ActionPageUp
	ActionHalfPageDown
	ActionHalfPageUp
	ActionLineDown
	ActionLineUp
	ActionScrollHome
	ActionAdjustLeftNarrower
	ActionAdjustLeftWider
)

// KeyHandler handles key input and maintains the numeric count
// buffer.
type KeyHandler struct {
	keyBuffer string
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle processes a key message and returns the action with its
// repeat count.
func (k *KeyHandler) Handle(msg tea.KeyMsg) (KeyAction, int) {
	key := msg.String()

	// Numeric keys build up the buffer
	if isNumericKey(key) {
		k.keyBuffer += key
		return ActionNone, 0
	}

	count := 1
	if k.keyBuffer != "" {
		if n, err := strconv.Atoi(k.keyBuffer); err == nil {
			count = n
		}
	}
	k.keyBuffer = ""

	return k.keyToAction(key), count
}

// KeyBuffer returns the current key buffer.
func (k *KeyHandler) KeyBuffer() string {
	return k.keyBuffer
}

// ClearBuffer clears the key buffer.
func (k *KeyHandler) ClearBuffer() {
	k.keyBuffer = ""
}

func (k *KeyHandler) keyToAction(key string) KeyAction {
	switch key {
	case "ctrl+c", "q":
		return ActionQuit
	case "?":
		return ActionToggleHelp
	case "/":
		return ActionOpenSearch
	case "n":
		return ActionSearchNext
	case "N":
		return ActionSearchPrevious
	case "ctrl+r":
		return ActionReplaceCurrent
	case "ctrl+b":
		return ActionReplaceAll
	case "s", "ctrl+s":
		return ActionSave
	case "R":
		return ActionReload
	case "w":
		return ActionToggleWrap
	case "j", "down":
		return ActionMoveDown
	case "k", "up":
		return ActionMoveUp
	case "g":
		return ActionGoToTop
	case "G":
		return ActionGoToBottom
	case "pgdown":
		return ActionPageDown
	case "pgup":
		return ActionPageUp
	case "J", "ctrl+d":
		return ActionHalfPageDown
	case "K", "ctrl+u":
		return ActionHalfPageUp
	case "ctrl+e":
		return ActionLineDown
	case "ctrl+y":
		return ActionLineUp
	case "home":
		return ActionScrollHome
	case "<", "H":
		return ActionAdjustLeftNarrower
	case ">", "L":
		return ActionAdjustLeftWider
	default:
		return ActionNone
	}
}

func isNumericKey(key string) bool {
	return len(key) == 1 && key >= "0" && key <= "9"
}
