package dto

import "user_backend/internal/platform/validation"

// Validate checks the registration rule set:
// name required ≤255, email required ≤255 valid syntax, password required ≥6.
// Email uniqueness is checked by the usecase against the store.
func (r RegisterReq) Validate() validation.Errors {
	v := validation.New()
	v.Field("name", validation.Required(r.Name), validation.MaxLen(r.Name, 255))
	v.Field("email", validation.Required(r.Email), validation.MaxLen(r.Email, 255), validation.Email(r.Email))
	v.Field("password", validation.Required(r.Password), validation.MinLen(r.Password, 6))
	return v.Errors()
}

// Validate checks the login rule set: email required valid syntax,
// password required ≥6.
func (r LoginReq) Validate() validation.Errors {
	v := validation.New()
	v.Field("email", validation.Required(r.Email), validation.Email(r.Email))
	v.Field("password", validation.Required(r.Password), validation.MinLen(r.Password, 6))
	return v.Errors()
}
