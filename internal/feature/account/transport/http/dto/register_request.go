// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// Fields are deliberately unvalidated here: presence of the credentials is
// the registration workflow's first step, so its error message is the one
// the client sees.
type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}
