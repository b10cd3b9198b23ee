// Пакет login содержит страницу входа TablePay.
package login

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"

	"tablepay/internal/client/identity"
	"tablepay/internal/client/portal"
	"tablepay/internal/client/storage"
	"tablepay/internal/client/tui/app"
	"tablepay/internal/client/tui/login/card"
	"tablepay/internal/client/tui/login/tabs"
)

// Page - страница входа. Для каждого портала реестра строится карточка входа,
// карточки переключаются панелью вкладок: видима ровно одна карточка.
func Page(ctx context.Context, url string, client *resty.Client, stor storage.IKeyValueStorage,
	info identity.IUserInfoStorage) func(tuiApp *app.App) tview.Primitive {

	return func(tuiApp *app.App) tview.Primitive {
		page, _ := newPage(ctx, portal.All(), url, client, stor, info, tuiApp)
		return page
	}
}

// newPage - собирает страницу входа по реестру порталов.
// Для пустого реестра страница остается без вкладок и карточек.
func newPage(ctx context.Context, order []portal.Portal, url string, client *resty.Client,
	stor storage.IKeyValueStorage, info identity.IUserInfoStorage, tuiApp *app.App) (*tview.Flex, *tabs.Switcher) {

	flex := tview.NewFlex().SetDirection(tview.FlexRow)

	sw := tabs.NewSwitcher(order, func(p portal.Portal) tview.Primitive {
		return card.New(ctx, p, url, client, stor, info, tuiApp)
	})
	if sw == nil {
		flex.AddItem(tview.NewTextView().
			SetText("no portals registered").
			SetTextAlign(tview.AlignCenter), 0, 1, false)
		return flex, nil
	}

	header := tview.NewTextView().
		SetText("TablePay").
		SetTextAlign(tview.AlignCenter)

	hint := tview.NewTextView().
		SetText("Left/Right: switch portal, Tab: to the form, Esc: back to tabs").
		SetTextAlign(tview.AlignCenter)

	flex.AddItem(header, 1, 1, false).
		AddItem(sw.Bar(), 3, 1, true).
		AddItem(sw.Cards(), 0, 1, false).
		AddItem(hint, 1, 1, false)

	// Клавиатурное управление: стрелки листают вкладки, Tab переводит фокус
	// на форму активной карточки, Esc возвращает его на панель вкладок.
	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if !sw.HasButton(tuiApp.App.GetFocus()) {
			// Фокус на форме карточки: перехватывается только Esc
			if event.Key() == tcell.KeyEsc {
				tuiApp.App.SetFocus(sw.ActiveButton())
				return nil
			}
			return event
		}

		switch event.Key() {
		case tcell.KeyLeft:
			sw.Cycle(-1)
			tuiApp.App.SetFocus(sw.ActiveButton())
			return nil
		case tcell.KeyRight:
			sw.Cycle(1)
			tuiApp.App.SetFocus(sw.ActiveButton())
			return nil
		case tcell.KeyTab:
			// Переход с панели вкладок к форме активной карточки
			if _, front := sw.Cards().GetFrontPage(); front != nil {
				tuiApp.App.SetFocus(front)
			}
			return nil
		}
		return event
	})

	return flex, sw
}
