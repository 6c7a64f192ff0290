package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pang/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeySeats(t *testing.T) {
	tests := []struct {
		name   string
		seats  int
		msg    tea.KeyMsg
		seat   core.PlayerID
		action core.Action
	}{
		{"p1 left", 1, tea.KeyMsg{Type: tea.KeyLeft}, core.Player1, core.ActionLeft},
		{"p1 right", 1, tea.KeyMsg{Type: tea.KeyRight}, core.Player1, core.ActionRight},
		{"p1 stop", 1, tea.KeyMsg{Type: tea.KeyDown}, core.Player1, core.ActionStop},
		{"p1 shoot", 1, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Player1, core.ActionShoot},
		{"p2 left", 2, runeKey('a'), core.Player2, core.ActionLeft},
		{"p2 right", 2, runeKey('d'), core.Player2, core.ActionRight},
		{"p2 shoot", 2, runeKey('w'), core.Player2, core.ActionShoot},
		{"pause", 1, runeKey('p'), core.Player1, core.ActionPause},
		{"restart", 1, runeKey('r'), core.Player1, core.ActionRestart},
		{"back", 1, tea.KeyMsg{Type: tea.KeyEsc}, core.Player1, core.ActionBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyMapper(tt.seats)
			frame := core.NewMultiInputFrame()
			if km.MapKey(tt.msg, 0, &frame) {
				t.Fatal("key reported as quit")
			}
			if !frame.Player(tt.seat).Has(tt.action) {
				t.Errorf("expected %v for seat %d", tt.action, tt.seat)
			}
		})
	}
}

func TestMapKeySoloIgnoresSecondSeat(t *testing.T) {
	km := NewKeyMapper(1)
	frame := core.NewMultiInputFrame()
	km.MapKey(runeKey('a'), 0, &frame)
	if frame.Any(core.ActionLeft) {
		t.Error("second seat keys should be ignored in solo play")
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper(1)
	frame := core.NewMultiInputFrame()
	if !km.MapKey(runeKey('q'), 0, &frame) {
		t.Error("q should quit")
	}
	if !km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC}, 0, &frame) {
		t.Error("ctrl+c should quit")
	}
}

func TestHoldLatchExpires(t *testing.T) {
	km := NewKeyMapper(1)
	km.SetHoldTicks(5)

	frame := core.NewMultiInputFrame()
	km.MapKey(tea.KeyMsg{Type: tea.KeyRight}, 10, &frame)

	frame.Clear()
	km.Expire(14, &frame)
	if frame.Any(core.ActionStop) {
		t.Fatal("stop emitted inside the hold window")
	}

	// A repeat extends the window
	km.MapKey(tea.KeyMsg{Type: tea.KeyRight}, 14, &frame)
	frame.Clear()
	km.Expire(18, &frame)
	if frame.Any(core.ActionStop) {
		t.Fatal("repeat did not extend the hold window")
	}

	km.Expire(19, &frame)
	if !frame.Player(core.Player1).Has(core.ActionStop) {
		t.Fatal("expected stop once repeats stopped")
	}

	// Only once
	frame.Clear()
	km.Expire(30, &frame)
	if frame.Any(core.ActionStop) {
		t.Error("stop emitted twice")
	}
}

func TestExplicitStopClearsLatch(t *testing.T) {
	km := NewKeyMapper(2)
	frame := core.NewMultiInputFrame()
	km.MapKey(runeKey('d'), 0, &frame)
	km.MapKey(runeKey('s'), 1, &frame)

	frame.Clear()
	km.Expire(1000, &frame)
	if frame.Any(core.ActionStop) {
		t.Error("latch should be cleared by an explicit stop")
	}
}

func TestMenuActions(t *testing.T) {
	keys := DefaultMenuKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := keys.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
