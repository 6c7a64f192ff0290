package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionShoot) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionShoot)
	f.Set(ActionLeft)
	if !f.Has(ActionShoot) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionShoot) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should be empty")
	}
	zero.Set(ActionRight)
	if !zero.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestMultiInputFrame(t *testing.T) {
	m := NewMultiInputFrame()
	m.Set(Player2, ActionShoot)

	if m.Player(Player1).Has(ActionShoot) {
		t.Error("player 1 should have no input")
	}
	if !m.Player(Player2).Has(ActionShoot) {
		t.Error("player 2 should have shoot")
	}
	if !m.Any(ActionShoot) || m.Any(ActionPause) {
		t.Error("Any should reflect actions of every player")
	}

	m.Clear()
	if m.Any(ActionShoot) {
		t.Error("Clear should reset every player")
	}
}

func TestActionString(t *testing.T) {
	if ActionShoot.String() != "Shoot" {
		t.Errorf("ActionShoot.String() = %q", ActionShoot.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
