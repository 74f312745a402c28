package session

import "testing"

func TestStateAffordances(t *testing.T) {
	tests := []struct {
		state    State
		selects  bool
		generate bool
		speak    bool
	}{
		{Idle, false, false, false},
		{ModelLoading, false, false, false},
		{Ready, true, false, false},
		{ImageLoaded, true, true, false},
		{Captioning, true, false, false},
		{CaptionReady, true, true, true},
		{Speaking, true, false, false},
		{ModelFailed, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.state.CanSelectImage(); got != tt.selects {
			t.Errorf("%v.CanSelectImage() = %v, want %v", tt.state, got, tt.selects)
		}
		if got := tt.state.CanGenerate(); got != tt.generate {
			t.Errorf("%v.CanGenerate() = %v, want %v", tt.state, got, tt.generate)
		}
		if got := tt.state.CanSpeak(); got != tt.speak {
			t.Errorf("%v.CanSpeak() = %v, want %v", tt.state, got, tt.speak)
		}
		if got := tt.state.CanExport(); got != tt.speak {
			t.Errorf("%v.CanExport() = %v, want %v", tt.state, got, tt.speak)
		}
	}
}

func TestStateBusy(t *testing.T) {
	busy := map[State]bool{ModelLoading: true, Captioning: true, Speaking: true}

	for s := Idle; s <= ModelFailed; s++ {
		if got := s.Busy(); got != busy[s] {
			t.Errorf("%v.Busy() = %v, want %v", s, got, busy[s])
		}
	}
}
