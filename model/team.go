package model

import (
	"slices"
	"time"
)

type Team struct {
	ID             int32     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ClassID        int32     `json:"classId"`
	UserIDs        []int32   `json:"userIds"`
	EnteredGameIDs []int32   `json:"enteredGameIds"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (t *Team) HasEntered(gameID int32) bool {
	return slices.Contains(t.EnteredGameIDs, gameID)
}

// DisplayName drops the class prefix the backend puts in front of every team
// name, e.g. "1-1 Aチーム" becomes "Aチーム".
func (t *Team) DisplayName() string {
	r := []rune(t.Name)
	if len(r) <= teamNamePrefixLen {
		return t.Name
	}
	return string(r[teamNamePrefixLen:])
}

const teamNamePrefixLen = 4

type TeamInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ClassID     int32  `json:"classId"`
}
