// Пакет card содержит карточку входа одного портала TablePay.
package card

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"

	"tablepay/internal/client/auth"
	"tablepay/internal/client/identity"
	"tablepay/internal/client/portal"
	"tablepay/internal/client/storage"
	"tablepay/internal/client/tui/app"
	"tablepay/internal/client/tui/tools/printer"
)

// PendingLabel - подпись кнопки отправки на время выполнения запроса.
const PendingLabel = "Logging in..."

// Подписи полей формы входа.
const (
	EmailLabel    = "Email"
	PasswordLabel = "Password"
)

// submitIndex - индекс кнопки отправки в форме карточки.
const submitIndex = 0

// New - карточка входа портала p: поля email и пароля и кнопка отправки.
// Запрос аутентификации выполняется в отдельной горутине, чтобы не блокировать
// цикл событий интерфейса. Кнопка отправки блокируется на время запроса,
// таймаут на запрос не устанавливается.
func New(ctx context.Context, p portal.Portal, url string, client *resty.Client,
	stor storage.IKeyValueStorage, info identity.IUserInfoStorage, tuiApp *app.App) *tview.Form {

	form := tview.NewForm()
	authData := &identity.LoginData{Portal: p}

	form.AddInputField(EmailLabel, "", 30, nil, func(text string) { authData.Email = text })
	form.AddPasswordField(PasswordLabel, "", 30, '*', func(text string) { authData.Password = text })

	form.AddButton(p.SubmitLabel(), func() {
		// Блокирую кнопку отправки до завершения запроса
		begin(form)

		// Снимок данных формы в цикле событий: поля остаются доступными для
		// редактирования во время запроса, горутина работает только с копией.
		data := *authData

		go func() {
			res, loginErr := auth.Login(ctx, data, client, url, stor, info)

			// Изменения интерфейса выполняются в цикле событий приложения
			tuiApp.App.QueueUpdateDraw(func() {
				done(form, p, tuiApp, res, loginErr)
			})
		}()
	})

	form.SetBorder(true).SetTitle(p.Label() + " Portal").SetTitleAlign(tview.AlignCenter)

	return form
}

// begin - переводит кнопку отправки в состояние выполняющегося запроса.
func begin(form *tview.Form) {
	submit := form.GetButton(submitIndex)
	submit.SetDisabled(true)
	submit.SetLabel(PendingLabel)
}

// done - возвращает кнопку отправки в исходное состояние и обрабатывает результат входа.
// Кнопка разблокируется при любом исходе, при успехе - непосредственно перед переходом
// на страницу рабочего стола.
func done(form *tview.Form, p portal.Portal, tuiApp *app.App, res *auth.Result, loginErr *auth.Error) {
	submit := form.GetButton(submitIndex)
	submit.SetDisabled(false)
	submit.SetLabel(p.SubmitLabel())

	if loginErr != nil {
		// Текст ошибки выводится пользователю дословно
		printer.Error(tuiApp, loginErr.Message)
		return
	}

	// Очистка поля пароля перед уходом со страницы входа
	form.GetFormItemByLabel(PasswordLabel).(*tview.InputField).SetText("")

	tuiApp.SwitchTo(res.Dashboard)
}
