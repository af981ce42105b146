// Package services file: services/leaderboard_service.go
package services

import (
	"fmt"
	"sort"

	"go-ultimate-hub/models"
)

// PlayerStatKind names a sortable player statistic.
type PlayerStatKind string

const (
	StatGoals   PlayerStatKind = "goals"
	StatAssists PlayerStatKind = "assists"
	StatBlocks  PlayerStatKind = "blocks"
)

// ParsePlayerStat defaults to goals when s is empty.
func ParsePlayerStat(s string) (PlayerStatKind, error) {
	switch PlayerStatKind(s) {
	case "":
		return StatGoals, nil
	case StatGoals, StatAssists, StatBlocks:
		return PlayerStatKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLeaderboardBy, s)
}

func (k PlayerStatKind) value(p models.PlayerStat) int {
	switch k {
	case StatAssists:
		return p.Assists
	case StatBlocks:
		return p.Blocks
	default:
		return p.Goals
	}
}

// RankedTeam is a team with its standing.
type RankedTeam struct {
	Rank int `json:"rank"`
	models.Team
}

// RankedPlayer is a player with their standing for one statistic.
type RankedPlayer struct {
	Rank     int    `json:"rank"`
	TeamName string `json:"teamName"`
	models.PlayerStat
}

// LeaderboardService ranks the static team and player tables.
type LeaderboardService struct {
	teams   []models.Team
	players []models.PlayerStat
}

// NewLeaderboardService copies the tables it is given.
func NewLeaderboardService(teams []models.Team, players []models.PlayerStat) *LeaderboardService {
	return &LeaderboardService{
		teams:   append([]models.Team{}, teams...),
		players: append([]models.PlayerStat{}, players...),
	}
}

// Teams orders by points, then wins, then name.
func (l *LeaderboardService) Teams() []RankedTeam {
	teams := append([]models.Team{}, l.teams...)
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Name < b.Name
	})

	out := make([]RankedTeam, len(teams))
	for i, t := range teams {
		out[i] = RankedTeam{Rank: i + 1, Team: t}
	}
	return out
}

// Players orders by the chosen statistic, then name.
func (l *LeaderboardService) Players(stat PlayerStatKind) []RankedPlayer {
	names := make(map[models.TeamID]string, len(l.teams))
	for _, t := range l.teams {
		names[t.ID] = t.Name
	}

	players := append([]models.PlayerStat{}, l.players...)
	sort.SliceStable(players, func(i, j int) bool {
		a, b := stat.value(players[i]), stat.value(players[j])
		if a != b {
			return a > b
		}
		return players[i].Name < players[j].Name
	})

	out := make([]RankedPlayer, len(players))
	for i, p := range players {
		out[i] = RankedPlayer{Rank: i + 1, TeamName: names[p.TeamID], PlayerStat: p}
	}
	return out
}
