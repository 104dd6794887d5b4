package validate

import "errors"

var (
	// ErrInvalidBasket — базовая (sentinel error) ошибка структурной валидации корзины.
	// Также возвращается, если корзина не передана.
	ErrInvalidBasket = errors.New("basket validation failed")

	// ErrDataIntegrity — данные, обязательные для проверки, отсутствуют или повреждены
	// (нет ключа в ответе сервиса остатков, некорректная дата занятия).
	// Такие случаи не считаются ни успехом, ни бизнес-отказом.
	ErrDataIntegrity = errors.New("checkout data integrity violation")
)
