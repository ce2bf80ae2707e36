package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleCoordinator    Role = "coordinator"
	RoleSubCoordinator Role = "subcoordinator"
	RoleUsher          Role = "usher"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleSubCoordinator, RoleUsher:
		return true
	}
	return false
}

// User - узел иерархии. ParentID равен nil только у корневого админа.
// Поля Percentage*/Winnings* - выданная узлу доля,
// которую он может распределять между прямыми подчиненными
type User struct {
	ID       int
	Name     string
	Login    string
	Password string
	Role     Role
	ParentID *int

	PercentageL2 float64
	PercentageL3 float64
	WinningsL2   float64
	WinningsL3   float64
}

// AllocationUpdate - предлагаемые новые значения четырех полей аллокации
type AllocationUpdate struct {
	PercentageL2 float64
	PercentageL3 float64
	WinningsL2   float64
	WinningsL3   float64
}

// AllocationDecision - результат проверки инварианта аллокации
type AllocationDecision struct {
	IsValid bool
	Message string
}

type UserClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
