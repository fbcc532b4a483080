package ranking

const pointsPerWin = 3

// PlayerRanking is the derived ladder position for one player.
type PlayerRanking struct {
	PlayerID     string `json:"player_id"`
	Points       int    `json:"points"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	TotalMatches int    `json:"total_matches"`
}

// ComputeRanking derives a player's ladder entry from their match history.
func ComputeRanking(playerID string, matches []*Match) PlayerRanking {
	wins := 0
	total := 0
	for _, m := range matches {
		if !m.Involves(playerID) {
			continue
		}
		total++
		if m.WinnerID() == playerID {
			wins++
		}
	}
	losses := total - wins
	return PlayerRanking{
		PlayerID:     playerID,
		Points:       wins * pointsPerWin,
		Wins:         wins,
		Losses:       losses,
		TotalMatches: total,
	}
}
