package dto

import (
	"github.com/SscSPs/currency_board/internal/core/domain"
)

// UserView is a user as rendered on the pages.
type UserView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToUserView converts a domain.User to its view.
func ToUserView(u domain.User) UserView {
	return UserView{ID: u.ID, Name: u.Name}
}

// ToUserViews converts a slice of domain.User, keeping order.
func ToUserViews(users []domain.User) []UserView {
	res := make([]UserView, len(users))
	for i, u := range users {
		res[i] = ToUserView(u)
	}
	return res
}
