package usecase

import "errors"

// ErrBasketNotFound — корзины с таким ID нет ни в кэше, ни в хранилище.
var ErrBasketNotFound = errors.New("basket not found")
