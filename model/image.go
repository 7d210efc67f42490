package model

import "time"

type Image struct {
	ID         int32     `json:"id"`
	Name       string    `json:"name"`
	Attachment string    `json:"attachment"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  int32     `json:"createdBy"`
}

type ImageInput struct {
	Name       string `json:"name"`
	Attachment string `json:"attachment"`
}
