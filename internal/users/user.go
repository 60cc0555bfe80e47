package users

import "errors"

var ErrNotFound = errors.New("user not found")

// User is the slice of the student profile this service needs.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	// OptedIn users receive their workouts as text messages
	OptedIn bool `json:"optedIn"`
}
