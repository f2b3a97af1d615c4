package models

import "time"

type Session struct {
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
