// Пакет tabs содержит переключатель карточек порталов для компактной раскладки.
package tabs

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tablepay/internal/client/portal"
)

// Стили вкладок: активная вкладка подсвечивается, остальные гаснут.
var (
	activeStyle   = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	inactiveStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
)

// Switcher - переключатель карточек порталов: панель вкладок и контейнер карточек.
// Активна ровно одна вкладка, видима только карточка её портала.
type Switcher struct {
	order   []portal.Portal
	buttons map[portal.Portal]*tview.Button
	bar     *tview.Flex
	cards   *tview.Pages
	active  portal.Portal
}

// NewSwitcher - собирает переключатель по реестру порталов. Карточка каждого портала
// строится функцией build и регистрируется под идентификатором карточки из реестра.
// Для пустого реестра переключатель не создается.
func NewSwitcher(order []portal.Portal, build func(p portal.Portal) tview.Primitive) *Switcher {
	if len(order) == 0 {
		return nil
	}

	s := &Switcher{
		order:   order,
		buttons: make(map[portal.Portal]*tview.Button, len(order)),
		bar:     tview.NewFlex().SetDirection(tview.FlexColumn),
		cards:   tview.NewPages(),
	}

	for i, p := range order {
		btn := tview.NewButton(p.Label())
		btn.SetSelectedFunc(func() { s.Select(p) })
		s.buttons[p] = btn
		s.bar.AddItem(btn, 0, 1, i == 0)

		s.cards.AddPage(p.CardID(), build(p), true, false)
	}

	// При старте активна первая вкладка реестра
	s.Select(order[0])

	return s
}

// Select - делает вкладку портала target единственной активной.
// Видимой остается только карточка выбранного портала.
func (s *Switcher) Select(target portal.Portal) {
	// Снимаю подсветку со всех вкладок и подсвечиваю выбранную
	for _, p := range s.order {
		if p == target {
			s.buttons[p].SetStyle(activeStyle)
		} else {
			s.buttons[p].SetStyle(inactiveStyle)
		}
	}

	// Показываю карточку выбранного портала, скрываю остальные
	for _, p := range s.order {
		if p == target {
			s.cards.ShowPage(p.CardID())
		} else {
			s.cards.HidePage(p.CardID())
		}
	}

	s.active = target
}

// Cycle - переключает активную вкладку на step позиций с переходом через край реестра.
func (s *Switcher) Cycle(step int) {
	for i, p := range s.order {
		if p == s.active {
			n := len(s.order)
			s.Select(s.order[((i+step)%n+n)%n])
			return
		}
	}
}

// Active - портал активной вкладки.
func (s *Switcher) Active() portal.Portal {
	return s.active
}

// ActiveButton - кнопка активной вкладки.
func (s *Switcher) ActiveButton() *tview.Button {
	return s.buttons[s.active]
}

// HasButton - проверяет, принадлежит ли примитив панели вкладок.
func (s *Switcher) HasButton(prim tview.Primitive) bool {
	for _, btn := range s.buttons {
		if btn == prim {
			return true
		}
	}
	return false
}

// Bar - панель вкладок.
func (s *Switcher) Bar() *tview.Flex {
	return s.bar
}

// Cards - контейнер карточек порталов.
func (s *Switcher) Cards() *tview.Pages {
	return s.cards
}
