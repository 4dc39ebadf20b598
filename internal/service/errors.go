package service

import "errors"

// Ошибки уровня сервиса, HTTP слой сопоставляет их с ответами через errors.Is
var (
	ErrMissingFilter      = errors.New("missing filters to search classes")
	ErrInvalidFilter      = errors.New("invalid filters to search classes")
	ErrRegistrationFailed = errors.New("unexpected error while creating new class")
)
