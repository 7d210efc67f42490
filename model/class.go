package model

import "time"

type Class struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	GroupID     int32     `json:"groupId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ClassInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GroupID     int32  `json:"groupId"`
}
