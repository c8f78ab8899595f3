package models

import "time"

type User struct {
	UserId       string
	Name         string
	Email        string
	PasswordHash []byte
	Role         string
	Phone        string
	GoogleId     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
