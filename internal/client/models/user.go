// Package models contains the client-side domain types for the retailer
// onboarding workflow.
package models

import "strings"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleRetailer Role = "RETAILER"
)

type ApprovalStatus string

const (
	ApprovalYes ApprovalStatus = "YES"
	ApprovalNo  ApprovalStatus = "NO"
)

// User mirrors a record of the remote /users resource. Password is only
// present transiently during signup and login exchanges; it is stripped
// before the record is ever persisted locally.
type User struct {
	ID         int            `json:"id,omitempty"`
	Email      string         `json:"email"`
	Password   string         `json:"password,omitempty"`
	Name       string         `json:"name"`
	Role       Role           `json:"role"`
	IsApproved ApprovalStatus `json:"isApproved"`
	CreatedAt  string         `json:"createdAt,omitempty"`
}

// WithoutPassword returns a copy of the user with the password cleared.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// IsAdmin reports whether the user's role is ADMIN. The comparison is
// case-insensitive because stored role strings are not consistently cased.
func (u User) IsAdmin() bool {
	return strings.EqualFold(string(u.Role), string(RoleAdmin))
}

// Approved reports whether the account has passed the approval gate.
func (u User) Approved() bool {
	return u.IsApproved == ApprovalYes
}

// LoginResult is the tagged outcome of a login attempt. Exactly one of the
// failure message or the user is meaningful: Success=true carries User,
// Success=false carries Message.
type LoginResult struct {
	Success bool
	User    *User
	Message string
}
