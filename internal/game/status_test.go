package game

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusRunning, StatusWon, true},
		{StatusRunning, StatusLost, true},
		{StatusWon, StatusRunning, false},
		{StatusWon, StatusLost, false},
		{StatusLost, StatusRunning, false},
		{StatusLost, StatusWon, false},
		{StatusRunning, StatusRunning, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestTransitionErrorMessage(t *testing.T) {
	err := &TransitionError{From: StatusWon, To: StatusRunning}
	want := "game: illegal status transition won -> running"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusRunning.Terminal() {
		t.Error("running should not be terminal")
	}
	if !StatusWon.Terminal() || !StatusLost.Terminal() {
		t.Error("won and lost should be terminal")
	}
}
