package models

import (
	"time"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
)

// Session is created at login, stored in redis and handed explicitly to every
// usecase that needs the current user.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleAdmin
}

func (s *Session) IsTherapist() bool {
	return s.Role == constvars.RoleTherapist
}

func (s *Session) IsFriend() bool {
	return s.Role == constvars.RoleFriend
}

func (s *Session) IsClient() bool {
	return s.Role == constvars.RoleClient
}

// IsProvider reports whether the user owns notes and client threads.
func (s *Session) IsProvider() bool {
	return s.IsTherapist() || s.IsFriend()
}
