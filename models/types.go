package models

import "time"

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// OptionIndex is a pointer so a missing field can be told apart from a
// legitimate vote for option 0.
type VoteRequest struct {
	OptionIndex *int `json:"optionIndex"`
}

type SetStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// Response types

type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the shape returned from the auth endpoints.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}

// Poll is a question with ordered options and positionally matching vote
// counters. OwnerID is nil for legacy polls created before ownership
// existed. IsActive is normalized at read time: rows where the column is
// NULL count as active.
type Poll struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	Votes     []int64   `json:"votes"`
	OwnerID   *string   `json:"owner,omitempty"`
	IsActive  bool      `json:"isActive"`
	Voters    []string  `json:"voters"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasVoted reports whether the given user is in the poll's voter set.
func (p Poll) HasVoted(userID string) bool {
	for _, v := range p.Voters {
		if v == userID {
			return true
		}
	}
	return false
}
