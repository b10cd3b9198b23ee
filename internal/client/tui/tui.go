// Пакет tui содержит имена страниц терминального интерфейса клиента TablePay.
package tui

// Имена страниц интерфейса. Страницы рабочих столов регистрируются
// под именами маршрутов из реестра порталов.
const (
	Login = "login" // страница входа с карточками порталов и панелью вкладок
)
