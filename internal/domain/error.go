package domain

// ErrorResponse is the body of every error answer of the API.
// @Description Standard error body.
type ErrorResponse struct {
	Code     int    `json:"code" example:"404"`
	Category string `json:"category" example:"NOT_FOUND"`
	Message  string `json:"message" example:"Recipe not found"`
}
