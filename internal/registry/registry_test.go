package registry

import (
	"testing"

	"github.com/codequest-game/codequest/internal/config"
)

func stubLoader(id string) Loader {
	return func() (*config.Level, error) {
		return &config.Level{
			ID:    id,
			Title: "Stub " + id,
			Grid:  config.GridConfig{Cols: 4, Rows: 4},
			Challenges: []config.ChallengeConfig{
				{Title: "Go", TargetCol: 3, TargetRow: 3, Reward: 10},
			},
		}, nil
	}
}

func TestRegisterAndLoad(t *testing.T) {
	Register("stub-a", stubLoader("stub-a"))

	if !Exists("stub-a") {
		t.Fatal("registered level not found")
	}
	lvl, err := Load("stub-a")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Title != "Stub stub-a" {
		t.Errorf("title = %q", lvl.Title)
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("no-such-level"); err == nil {
		t.Error("expected error for unknown level")
	}
	if Exists("no-such-level") {
		t.Error("unknown level reported as existing")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", stubLoader("stub-dup"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", stubLoader("stub-dup"))
}

func TestRegisterMismatchedIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on id mismatch")
		}
	}()
	Register("stub-mismatch", stubLoader("other-id"))
}

func TestListSorted(t *testing.T) {
	Register("stub-z", stubLoader("stub-z"))
	Register("stub-b", stubLoader("stub-b"))

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Fatalf("list not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}
