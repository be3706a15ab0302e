package domain

type Principal struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
