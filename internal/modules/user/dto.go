package user

import "foodgram/internal/domain"

// Response — представление пользователя глазами конкретного зрителя.
// is_subscribed всегда false для анонима и для самого себя.
type Response struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// ToResponse конвертирует domain.User в API response
func ToResponse(u *domain.User, isSubscribed bool) Response {
	return Response{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

// ListResponse — страница пользователей
type ListResponse struct {
	Users      []Response `json:"users"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	TotalPages int        `json:"total_pages"`
}
