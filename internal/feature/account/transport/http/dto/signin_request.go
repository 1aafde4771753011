package dto

// SigninReq represents the request body for the /signin endpoint.
type SigninReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
