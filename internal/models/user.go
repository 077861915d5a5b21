package models

// User is a row of the users table.
type User struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
