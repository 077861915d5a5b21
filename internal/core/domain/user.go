package domain

// User represents a user of the application in the domain.
type User struct {
	ID   int64  `json:"id"` // Assigned by the store on insert
	Name string `json:"name"`
}
