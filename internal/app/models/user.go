package models

import "time"

// RoleType represents the user role
type RoleType string

const (
	// RoleAdvisor can manage universities, courses, topics and rules
	RoleAdvisor RoleType = "ADVISOR"
	// RoleStudent can run evaluations and browse data
	RoleStudent RoleType = "STUDENT"
)

// User represents an application user account
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	FullName  string    `json:"fullName"`
	RoleType  RoleType  `json:"roleType"`
	CreatedAt time.Time `json:"createdAt"`
}
