// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"regexp"

	"user_backend/internal/platform/validation"
)

// phonePattern restricts phone numbers to digits, whitespace and common
// punctuation.
var phonePattern = regexp.MustCompile(`^[0-9\s\-\+\(\)]*$`)

// CreateUserReq represents the request body for POST /api/v1/users.
// Fields are pointers so that absent and empty values can be told apart by
// the validation rules; phone and age are optional.
type CreateUserReq struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Age      *int    `json:"age"`
}

// Validate checks the create rule set: fullName required ≤255, email required
// ≤255 valid syntax, phone optional pattern-matching ≥10, age optional in
// [0,130]. Uniqueness of email/phone is checked by the usecase.
func (r CreateUserReq) Validate() validation.Errors {
	v := validation.New()
	v.Field("fullName", validation.Required(r.FullName), validation.MaxLen(r.FullName, 255))
	v.Field("email", validation.Required(r.Email), validation.MaxLen(r.Email, 255), validation.Email(r.Email))
	v.Field("phone", validation.Match(r.Phone, phonePattern), validation.MinLen(r.Phone, 10))
	v.Field("age", validation.Between(r.Age, 0, 130))
	return v.Errors()
}

// UpdateUserReq represents the request body for PUT /api/v1/users/{id}.
// The rule set matches create; the usecase excludes the updated record from
// the uniqueness checks.
type UpdateUserReq = CreateUserReq

// SearchUserReq represents the request body for POST /api/v1/users/search.
// All fields are optional filters and modifiers.
type SearchUserReq struct {
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	OrderBy *string `json:"order_by"`
	Order   *string `json:"order"`
	Limit   *int    `json:"limit"`
}

// Validate checks the search rule set: email optional valid syntax, phone
// optional pattern-matching, order_by in {email, phone}, order in {asc, desc}.
func (r SearchUserReq) Validate() validation.Errors {
	v := validation.New()
	v.Field("email", validation.MaxLen(r.Email, 255), validation.Email(r.Email))
	v.Field("phone", validation.Match(r.Phone, phonePattern))
	v.Field("order_by", validation.In(r.OrderBy, "email", "phone"))
	v.Field("order", validation.In(r.Order, "asc", "desc"))
	return v.Errors()
}
