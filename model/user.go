package model

import "time"

type Gender string

const (
	GENDER_MALE   Gender = "male"
	GENDER_FEMALE Gender = "female"
)

type User struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Gender    Gender    `json:"gender"`
	ClassID   int32     `json:"classId"`
	TeamIDs   []int32   `json:"teamIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Gender  Gender `json:"gender"`
	ClassID int32  `json:"classId"`
}

// Viewer identifies the user a "my ..." view is computed for.
type Viewer struct {
	UserID int32
}
