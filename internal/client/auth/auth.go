// Пакет auth содержит хэндлер аутентификации пользователя на сервере TablePay
// и мидлвари для исходящих запросов.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"tablepay/internal/client/identity"
	"tablepay/internal/client/logger"
	"tablepay/internal/client/portal"
	"tablepay/internal/client/storage"
	"tablepay/internal/repositories/login"
)

// GenericFailureMessage - сообщение для пользователя на случай, когда сервер вернул
// ошибочный статус без поля detail в теле ответа.
const GenericFailureMessage = "Login failed due to server error."

// Виды ошибок аутентификации.
const (
	KindValidation = "validation" // данные формы не прошли локальную проверку
	KindTransport  = "transport"  // запрос не удалось доставить до сервера
	KindServer     = "server"     // сервер вернул ошибочный статус
	KindResponse   = "response"   // успешный ответ сервера не удалось обработать
)

// Error - структурированная ошибка аутентификации.
type Error struct {
	Kind    string // вид ошибки
	Message string // текст для отображения пользователю
}

// Error - реализация интерфейса error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// validate - валидатор тела запроса аутентификации.
var validate = validator.New()

// Result - результат успешной аутентификации.
type Result struct {
	User      identity.UserInfo // сведения о пользователе из ответа сервера
	Dashboard string            // имя страницы рабочего стола, на которую следует перейти
}

// Login - хэндлер для аутентификации пользователя на сервере TablePay.
// Хэндлер отправляет запрос на сервер, а при успехе сохраняет имя и портал пользователя
// в локальном хранилище и устанавливает сведения о сессии в оперативной памяти.
// Возвращается либо результат с именем страницы рабочего стола, либо структурированная
// ошибка с текстом для пользователя. Таймаут на запрос не устанавливается.
func Login(ctx context.Context, authData identity.LoginData, client *resty.Client, url string,
	stor storage.IKeyValueStorage, info identity.IUserInfoStorage) (*Result, *Error) {

	// Создаю тело запроса. Имя портала передается в нижнем регистре.
	reqData := login.Request{
		Portal:   authData.Portal.Slug(),
		Email:    authData.Email,
		Password: authData.Password,
	}

	// проверяю корректность данных формы перед отправкой
	if err := validate.Struct(reqData); err != nil {
		logger.ClientLog.Error("login data is not valid", zap.String("error", error.Error(err)))
		return nil, &Error{Kind: KindValidation, Message: validationMessage(err)}
	}

	// Отправляю запрос аутентификации на сервер
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqData).
		Post(url)

	// Не удалось установить соединение с сервером или другая ошибка подобного рода.
	// Повторная отправка запроса не выполняется, пользователь может повторить попытку сам.
	if err != nil {
		logger.ClientLog.Error("sending login request failed", zap.String("error", error.Error(err)))
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}

	// Сервер вернул ошибочный статус. Текст для пользователя берется из поля detail
	// тела ответа, а при его отсутствии используется общее сообщение.
	if !resp.IsSuccess() {
		logger.ClientLog.Error("bad server status", zap.String("status", fmt.Sprint(resp.StatusCode())))

		var apiErr login.APIError
		if err := json.Unmarshal(resp.Body(), &apiErr); err != nil || apiErr.Detail == "" {
			return nil, &Error{Kind: KindServer, Message: GenericFailureMessage}
		}
		return nil, &Error{Kind: KindServer, Message: apiErr.Detail}
	}

	// Разбираю тело успешного ответа
	var respData login.Response
	if err := json.Unmarshal(resp.Body(), &respData); err != nil {
		logger.ClientLog.Error("failed to parse server response", zap.String("error", error.Error(err)))
		return nil, &Error{Kind: KindResponse, Message: err.Error()}
	}

	// Определяю страницу рабочего стола по порталу из ответа сервера.
	// При неизвестном портале переход не выполняется.
	p, err := portal.Parse(respData.Portal)
	if err != nil {
		logger.ClientLog.Error("server returned unknown portal", zap.String("portal", respData.Portal))
		return nil, &Error{Kind: KindResponse, Message: err.Error()}
	}

	// Сохраняю имя и портал пользователя в локальном хранилище в том виде,
	// в каком их вернул сервер. Рабочие столы читают эти ключи при отображении.
	if err := stor.Set(ctx, storage.KeyUserName, respData.Name); err != nil {
		logger.ClientLog.Error("failed to save user name to local storage", zap.String("error", error.Error(err)))
		return nil, &Error{Kind: KindResponse, Message: err.Error()}
	}
	if err := stor.Set(ctx, storage.KeyUserPortal, respData.Portal); err != nil {
		logger.ClientLog.Error("failed to save user portal to local storage", zap.String("error", error.Error(err)))

		// Откатываю запись имени, чтобы данные входа не остались записанными наполовину
		if delErr := stor.Delete(ctx, storage.KeyUserName); delErr != nil {
			logger.ClientLog.Error("failed to rollback user name record", zap.String("error", error.Error(delErr)))
		}
		return nil, &Error{Kind: KindResponse, Message: err.Error()}
	}

	// Устанавливаю сведения о пользователе в хранилище на время сессии
	user := identity.UserInfo{
		Name:   respData.Name,
		Portal: respData.Portal,
		UserID: respData.UserID,
	}
	info.Set(user)

	// Пользователь успешно аутентифицирован
	logger.ClientLog.Info("user successfully logged in",
		zap.String("name", respData.Name), zap.String("portal", respData.Portal))
	return &Result{
		User:      user,
		Dashboard: p.DashboardRoute(),
	}, nil
}

// validationMessage - преобразует ошибку валидатора в сообщение для пользователя.
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		switch vErrs[0].Field() {
		case "Email":
			return "email is not valid"
		case "Password":
			return "password is not valid"
		case "Portal":
			return "portal is not valid"
		}
	}
	return "login data is not valid"
}
