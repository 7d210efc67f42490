package model

import (
	"slices"
	"time"
)

type Sport struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Weight      int32     `json:"weight"`
	GameIDs     []int32   `json:"gameIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *Sport) HasGame(gameID int32) bool {
	return slices.Contains(s.GameIDs, gameID)
}

type SportInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int32  `json:"weight"`
}
