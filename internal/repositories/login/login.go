// Пакет login содержит типы данных для обмена с сервером TablePay при аутентификации.
package login

// Path - относительный путь эндпоинта аутентификации сервера TablePay.
const Path = "/api/login"

// Request - структура тела запроса аутентификации. Сервер хранит пользователей
// в отдельных коллекциях для каждого портала, поэтому имя портала передается
// в нижнем регистре.
type Request struct {
	Portal   string `json:"portal" validate:"required,oneof=admin cashier kitchen"` // имя портала в нижнем регистре
	Email    string `json:"email" validate:"required,email"`                        // электронная почта пользователя
	Password string `json:"password" validate:"required"`                           // пароль пользователя в открытом виде
}

// Response - структура тела успешного ответа сервера.
type Response struct {
	Message string `json:"message"` // служебное сообщение сервера
	UserID  string `json:"user_id"` // идентификатор пользователя
	Portal  string `json:"portal"`  // портал, к которому привязан пользователь
	Name    string `json:"name"`    // отображаемое имя пользователя
}

// APIError - структура тела ответа сервера в случае ошибки аутентификации.
type APIError struct {
	Detail string `json:"detail"` // текст ошибки для отображения пользователю
}
