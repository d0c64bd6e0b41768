// Package entities contains core business entities.
package entities

// User is a domain representation of an account referenced by the core.
type User struct {
	ID       int64
	Username string
	Email    string
}
