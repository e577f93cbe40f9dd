package game

import "testing"

func TestGetGameStateSingleton(t *testing.T) {
	globalGameState = nil
	a := GetGameState()
	b := GetGameState()
	if a != b {
		t.Error("GetGameState should return the same instance")
	}
	if a.Speed != 1 {
		t.Errorf("Default speed = %f, want 1", a.Speed)
	}
	globalGameState = nil
}

func TestPlantingMode(t *testing.T) {
	gs := NewGameState()

	gs.EnterPlantingMode("daisy")
	mode, name := gs.GetPlantingMode()
	if !mode || name != "daisy" {
		t.Errorf("GetPlantingMode() = (%v, %q), want (true, daisy)", mode, name)
	}

	gs.ExitPlantingMode()
	mode, name = gs.GetPlantingMode()
	if mode {
		t.Error("Planting mode should be off")
	}
	if name != "daisy" {
		t.Error("Selection should be remembered after leaving planting mode")
	}
}

func TestSpeedAndPause(t *testing.T) {
	gs := NewGameState()

	if got := gs.ScaledDelta(0.5); got != 0.5 {
		t.Errorf("ScaledDelta at speed 1 = %f, want 0.5", got)
	}

	gs.ScaleSpeed(2)
	if got := gs.ScaledDelta(0.5); got != 1 {
		t.Errorf("ScaledDelta at speed 2 = %f, want 1", got)
	}

	for i := 0; i < 10; i++ {
		gs.ScaleSpeed(2)
	}
	if gs.Speed != MaxSpeed {
		t.Errorf("Speed = %f, want clamped to %f", gs.Speed, MaxSpeed)
	}
	for i := 0; i < 20; i++ {
		gs.ScaleSpeed(0.5)
	}
	if gs.Speed != MinSpeed {
		t.Errorf("Speed = %f, want clamped to %f", gs.Speed, MinSpeed)
	}

	gs.TogglePause()
	if got := gs.ScaledDelta(1); got != 0 {
		t.Errorf("Paused ScaledDelta = %f, want 0", got)
	}
}
