// Пакет portal описывает реестр порталов TablePay и производные от него
// идентификаторы интерфейса и маршруты.
package portal

import (
	"fmt"
	"strings"
)

// Portal - портал TablePay. Определяет коллекцию пользователей на стороне сервера
// и набор элементов интерфейса на стороне клиента.
type Portal int

// Поддерживаемые порталы.
const (
	Admin Portal = iota
	Cashier
	Kitchen
)

// All - возвращает реестр поддерживаемых порталов в порядке отображения вкладок.
func All() []Portal {
	return []Portal{Admin, Cashier, Kitchen}
}

// Label - отображаемое имя портала.
func (p Portal) Label() string {
	switch p {
	case Admin:
		return "Admin"
	case Cashier:
		return "Cashier"
	case Kitchen:
		return "Kitchen"
	}
	return ""
}

// Slug - имя портала в нижнем регистре. Передается в теле запроса аутентификации
// и служит основой производных идентификаторов.
func (p Portal) Slug() string {
	return strings.ToLower(p.Label())
}

// CardID - идентификатор карточки входа портала на странице логина.
func (p Portal) CardID() string {
	return p.Slug() + "-portal-card"
}

// DashboardRoute - имя страницы рабочего стола портала.
func (p Portal) DashboardRoute() string {
	return p.Slug() + "_dashboard"
}

// SubmitLabel - подпись кнопки отправки формы входа портала.
func (p Portal) SubmitLabel() string {
	return "Login as " + p.Label()
}

// Parse - функция для получения портала по имени без учета регистра.
// Для неизвестного имени возвращается ошибка.
func Parse(s string) (Portal, error) {
	for _, p := range All() {
		if strings.EqualFold(s, p.Label()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown portal %q", s)
}

// Validate - функция для проверки реестра порталов при старте приложения.
// Имена порталов и производные идентификаторы должны быть непустыми и уникальными.
func Validate() error {
	seen := make(map[string]struct{})
	for _, p := range All() {
		if p.Label() == "" {
			return fmt.Errorf("portal %d has empty label", int(p))
		}
		for _, id := range []string{p.Slug(), p.CardID(), p.DashboardRoute()} {
			if id == "" {
				return fmt.Errorf("portal %s has empty identifier", p.Label())
			}
			if _, ok := seen[id]; ok {
				return fmt.Errorf("duplicate portal identifier %q", id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}
