package core

import "testing"

func TestInputFrameClearKeepsHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.SetHeld(ActionRight, true)
	f.SelectLevel(4)

	f.Clear()

	if f.Has(ActionJump) {
		t.Error("Clear should drop edge actions")
	}
	if _, ok := f.Selected(); ok {
		t.Error("Clear should drop the level pick")
	}
	if !f.IsHeld(ActionRight) {
		t.Error("Clear should keep held state")
	}

	f.SetHeld(ActionRight, false)
	if f.IsHeld(ActionRight) {
		t.Error("SetHeld(false) should release")
	}
}

func TestInputFrameLevelPick(t *testing.T) {
	var f InputFrame // zero value works

	if _, ok := f.Selected(); ok {
		t.Error("zero frame should have no pick")
	}

	f.SelectLevel(0)
	if idx, ok := f.Selected(); !ok || idx != 0 {
		t.Errorf("Selected() = (%d, %v), expected (0, true)", idx, ok)
	}

	f.SelectLevel(-1) // ignored
	if idx, _ := f.Selected(); idx != 0 {
		t.Errorf("negative pick overwrote the previous one: %d", idx)
	}

	if f.Has(ActionConfirm) || f.IsHeld(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
}

func TestActionString(t *testing.T) {
	if ActionLevelSelect.String() != "LevelSelect" {
		t.Errorf("String() = %q", ActionLevelSelect.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q for an unknown action", Action(99).String())
	}
}
