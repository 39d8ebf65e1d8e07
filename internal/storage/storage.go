// Package storage определяет ошибки уровня хранилища, общие для всех реализаций.
package storage

import "errors"

// ErrUserNotFound возвращается, когда пользователь с заданным идентификатором
// или email отсутствует в базе.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken возвращается при попытке зарегистрировать пользователя
// с уже занятым email.
var ErrEmailTaken = errors.New("email already in use")
