package dto

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
}
