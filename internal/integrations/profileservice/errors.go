package profileservice

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profileservice client: profile not found")

	// ErrNotProfessional возвращается, когда профиль найден, но не является профессионалом
	ErrNotProfessional = errors.New("profileservice client: profile is not a professional")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")
)
