// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/v1/register endpoint.
// Fields are pointers so that absent and empty values can be told apart by
// the validation rules.
type RegisterReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// TokenData is the success payload for register and login: the issued bearer
// token and the account holder's name.
type TokenData struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
