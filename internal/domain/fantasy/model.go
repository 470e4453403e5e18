package fantasy

import "github.com/riskibarqy/fpl-insight/internal/domain/player"

// SquadPick represents one selected player in the local roster.
type SquadPick struct {
	PlayerID int
	TeamID   int
	Position player.Position
	Price    int
}

func PickFromPlayer(p player.Player) SquadPick {
	return SquadPick{
		PlayerID: p.ID,
		TeamID:   p.TeamID,
		Position: p.Position,
		Price:    p.Price,
	}
}
