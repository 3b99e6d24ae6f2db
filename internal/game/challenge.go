package game

import (
	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/core"
)

// Challenge is a quest objective: reach a target tile for a reward.
// Challenges are completed strictly in order.
type Challenge struct {
	Title       string
	Description string
	Target      core.Point
	Reward      int
	Completed   bool
}

func buildChallenges(lvl *config.Level) []*Challenge {
	chs := make([]*Challenge, 0, len(lvl.Challenges))
	for _, cc := range lvl.Challenges {
		chs = append(chs, &Challenge{
			Title:       cc.Title,
			Description: cc.Description,
			Target:      core.Point{X: cc.TargetCol, Y: cc.TargetRow},
			Reward:      cc.Reward,
		})
	}
	return chs
}
