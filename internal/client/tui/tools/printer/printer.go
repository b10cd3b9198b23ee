// Пакет printer содержит блокирующее модальное окно - аналог браузерного alert.
package printer

import (
	"tablepay/internal/client/tui/app"

	"github.com/rivo/tview"
)

// Error - функция для вывода ошибок на экран пользователя.
// Текст отображается дословно, без префиксов: сообщения сервера
// должны доходить до пользователя в исходном виде.
func Error(app *app.App, message string) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			app.Pages.RemovePage("error")
		})
	app.Pages.AddPage("error", modal, true, true)
}
