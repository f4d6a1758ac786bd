package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Operator é um usuário humano ou de automação que dispara operações de
// campanha. O valor de Actor é gravado como created_by nos registros append-only.
type Operator struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Active       bool      `json:"active"`
	Automation   bool      `json:"automation"`
	TeamID       *string   `json:"team_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	OperatorID    string
	OperatorName  string
	OperatorEmail string
	Automation    bool
	jwt.RegisteredClaims
}
