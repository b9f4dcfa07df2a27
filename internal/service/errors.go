package service

import "errors"

var (
	// ErrUnauthorized — нет идентичности вызывающего, либо запись не найдена или чужая.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPersistence оборачивает любую ошибку хранилища.
	ErrPersistence = errors.New("persistence failure")

	ErrInvalidTitle    = errors.New("title must not be blank")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrInvalidContent  = errors.New("content must be a JSON object")
)
