package model

import (
	"errors"
	"strings"
	"time"
)

var ErrUnsupportedGameType = errors.New("unsupported game type")

// GameType decides which result variant a game produces. The raw value from the API
// is kept as is so that an unknown type can be reported back.
type GameType string

const (
	GAME_LEAGUE     GameType = "league"
	GAME_TOURNAMENT GameType = "tournament"
)

func ParseGameType(t string) GameType {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "league":
		return GAME_LEAGUE
	case "tournament":
		return GAME_TOURNAMENT
	default:
		return GameType(t)
	}
}

func (t GameType) IsSupported() bool {
	return t == GAME_LEAGUE || t == GAME_TOURNAMENT
}

type Game struct {
	ID              int32     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SportID         int32     `json:"sportId"`
	Type            GameType  `json:"type"`
	CalculationType string    `json:"calculationType"`
	Weight          int32     `json:"weight"`
	EnteredTeamIDs  []int32   `json:"enteredTeamIds"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// GameInput is a Game without the server generated fields.
type GameInput struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	SportID         int32    `json:"sportId"`
	Type            GameType `json:"type"`
	CalculationType string   `json:"calculationType"`
	Weight          int32    `json:"weight"`
}
