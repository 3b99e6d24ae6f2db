package tui

import "testing"

func TestTickCmdClampsRate(t *testing.T) {
	for _, rate := range []int{0, -5, 1, 30} {
		if cmd := tickCmd(rate); cmd == nil {
			t.Fatalf("tickCmd(%d) returned nil", rate)
		}
	}
}
