package profileservice

// Profile модель профиля пользователя из ProfileService
type Profile struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsProfessional bool   `json:"is_professional"`
	Timezone       string `json:"timezone"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
