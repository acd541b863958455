package dto

import "user_backend/internal/feature/users/domain/entity"

// dateLayout renders timestamps as dd/mm/yyyy, the format the API contract
// promises for created_at and updated_at.
const dateLayout = "02/01/2006"

// UserItem is the client-facing representation of a user record.
type UserItem struct {
	ID        uint    `json:"id"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Age       *int    `json:"age"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// NewUserItem converts a user entity to its client-facing representation.
func NewUserItem(u *entity.User) UserItem {
	return UserItem{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Age:       u.Age,
		CreatedAt: u.CreatedAt.Format(dateLayout),
		UpdatedAt: u.UpdatedAt.Format(dateLayout),
	}
}

// NewUserItems converts a slice of user entities, never returning nil so the
// envelope serializes an empty list as [] instead of null.
func NewUserItems(users []entity.User) []UserItem {
	out := make([]UserItem, 0, len(users))
	for i := range users {
		out = append(out, NewUserItem(&users[i]))
	}
	return out
}

// SearchResult is the success payload for search: one page of users plus a
// flag reporting whether a further page exists. No total count is computed.
type SearchResult struct {
	Items   []UserItem `json:"items"`
	HasMore bool       `json:"has_more"`
}

// CreatedData is the success payload for create: the id of the stored record.
type CreatedData struct {
	ID uint `json:"id"`
}
