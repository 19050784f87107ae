// Package models contains the server-side record types for the user
// storage service.
package models

// User is a record of the /users collection. The wire format mirrors the
// stored record one-to-one, password included: this service is a plain
// data resource with no server-side authentication, and the client owns
// all credential handling. That trust boundary is a documented property
// of the system, not something this stand-in corrects.
type User struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsApproved string `json:"isApproved"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
