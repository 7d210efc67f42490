package model

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	ROLE_UNKNOWN Role = ""
	ROLE_ADMIN   Role = "ADMIN"
	ROLE_USER    Role = "USER"
)

func ParseRole(r string) Role {
	switch strings.ToUpper(strings.TrimSpace(r)) {
	case "ADMIN":
		return ROLE_ADMIN
	case "USER":
		return ROLE_USER
	default:
		return ROLE_UNKNOWN
	}
}

type MicrosoftAccount struct {
	ID              int32     `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	MailAccountName *string   `json:"mailAccountName"`
	Role            Role      `json:"role"`
	UserID          *int32    `json:"userId"`
	LinkLater       bool      `json:"linkLater"`
	FirstLogin      time.Time `json:"firstLogin"`
	LastLogin       time.Time `json:"lastLogin"`
}

func (a *MicrosoftAccount) IsLinked() bool {
	return a.UserID != nil
}

// AccountRef addresses a Microsoft account either by id or as the signed in account.
type AccountRef string

const AccountMe AccountRef = "me"

func AccountID(id int32) AccountRef {
	return AccountRef(fmt.Sprintf("%d", id))
}

func (r AccountRef) String() string {
	return string(r)
}
