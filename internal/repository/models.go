package repository

import (
	"sort"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey;autoIncrement:false"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         Role      `gorm:"type:varchar(16);not null"`
	Sessions     []Session `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

// Session is one active bearer token of a user. A user's token collection is
// the set of its session rows, so appending and pulling tokens are single
// INSERT and DELETE statements rather than a rewrite of the user row.
type Session struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"type:varchar(36);index;not null"`
	Token     string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// Tokens returns the user's active tokens in the order they were issued.
func (u User) Tokens() []string {
	sessions := make([]Session, len(u.Sessions))
	copy(sessions, u.Sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].ID < sessions[j].ID
	})

	tokens := make([]string, 0, len(sessions))
	for _, s := range sessions {
		tokens = append(tokens, s.Token)
	}
	return tokens
}

func (u User) HasToken(token string) bool {
	for _, s := range u.Sessions {
		if s.Token == token {
			return true
		}
	}
	return false
}
