// Package models file: models/leaderboard.go
package models

// Team is a static leaderboard entry.
type Team struct {
	ID          TeamID  `json:"id"`
	Name        string  `json:"name"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Points      int     `json:"points"`
	SpiritScore float64 `json:"spiritScore"`
}

// PlayerStat is a static per-player statistics line.
type PlayerStat struct {
	ID      PlayerID `json:"id"`
	Name    string   `json:"name"`
	TeamID  TeamID   `json:"teamId"`
	Goals   int      `json:"goals"`
	Assists int      `json:"assists"`
	Blocks  int      `json:"blocks"`
}
