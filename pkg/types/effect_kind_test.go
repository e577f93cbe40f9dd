package types

import "testing"

func TestParseEffectKindRoundTrip(t *testing.T) {
	kinds := []EffectKind{
		EffectAttribute,
		EffectAttributeRate,
		EffectAttributeDecay,
		EffectAttributeClamp,
	}

	for _, kind := range kinds {
		parsed, err := ParseEffectKind(kind.String())
		if err != nil {
			t.Errorf("ParseEffectKind(%q) returned error: %v", kind.String(), err)
			continue
		}
		if parsed != kind {
			t.Errorf("ParseEffectKind(%q) = %v, want %v", kind.String(), parsed, kind)
		}
	}
}

func TestParseEffectKindUnknown(t *testing.T) {
	kind, err := ParseEffectKind("teleport")
	if err == nil {
		t.Error("Expected error for unknown effect kind")
	}
	if kind != EffectUnknown {
		t.Errorf("Expected EffectUnknown, got %v", kind)
	}
}

func TestFlowerStateString(t *testing.T) {
	tests := []struct {
		state FlowerState
		want  string
	}{
		{FlowerGrowing, "Growing"},
		{FlowerFull, "Full"},
		{FlowerRegenning, "Regenning"},
		{FlowerDead, "Dead"},
		{FlowerState(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("FlowerState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
