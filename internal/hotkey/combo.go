package hotkey

import (
	"fmt"
	"strings"
)

// Combo is a trigger key gated by a set of alternative modifiers.
type Combo struct {
	Key       uint32
	Modifiers []uint32
}

// WinF12 fires on F12 while either Windows key is held.
var WinF12 = Combo{Key: VKF12, Modifiers: []uint32{VKLWin, VKRWin}}

// Matches reports whether ev presses the trigger key while at least one of
// the modifiers is down. Modifiers are read from keys at the time of the
// call, not from the event.
func (c Combo) Matches(ev KeyEvent, keys KeyState) bool {
	if !ev.Down || ev.VKCode != c.Key {
		return false
	}
	for _, mod := range c.Modifiers {
		if keys.Pressed(mod) {
			return true
		}
	}
	return false
}

var keyNames = map[uint32]string{
	VKLWin: "LWin",
	VKRWin: "RWin",
	VKF12:  "F12",
}

func keyName(vk uint32) string {
	if name, ok := keyNames[vk]; ok {
		return name
	}
	return fmt.Sprintf("VK(0x%02X)", vk)
}

// String renders the combo as "LWin|RWin+F12".
func (c Combo) String() string {
	mods := make([]string, 0, len(c.Modifiers))
	for _, mod := range c.Modifiers {
		mods = append(mods, keyName(mod))
	}
	if len(mods) == 0 {
		return keyName(c.Key)
	}
	return strings.Join(mods, "|") + "+" + keyName(c.Key)
}
