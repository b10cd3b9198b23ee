// Пакет identity содержит типы данных о пользователе на стороне клиента.
package identity

import "tablepay/internal/client/portal"

// LoginData - данные формы входа, собранные перед отправкой на сервер.
type LoginData struct {
	Portal   portal.Portal // портал, чья карточка входа была отправлена
	Email    string        // электронная почта пользователя
	Password string        // пароль пользователя
}

// UserInfo - сведения о вошедшем пользователе из успешного ответа сервера.
type UserInfo struct {
	Name   string // отображаемое имя пользователя
	Portal string // имя портала в том виде, в каком его вернул сервер
	UserID string // идентификатор пользователя
}

// IUserInfoStorage - интерфейс для хранения сведений о текущем пользователе в оперативной памяти.
type IUserInfoStorage interface {
	Set(info UserInfo) // метод для сохранения сведений о пользователе.
	Get() UserInfo     // метод для получения сведений о пользователе.
}
