package login

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablepay/internal/client/portal"
	"tablepay/internal/client/storage/session"
	"tablepay/internal/client/tui/app"
	"tablepay/internal/client/tui/login/tabs"
	"tablepay/internal/repositories/mocks"
)

func newTestPage(t *testing.T, order []portal.Portal) (*tview.Flex, *tabs.Switcher, *app.App) {
	ctrl := gomock.NewController(t)
	stor := mocks.NewMockIKeyValueStorage(ctrl)

	tuiApp := &app.App{
		App:   tview.NewApplication(),
		Pages: tview.NewPages(),
	}

	page, sw := newPage(context.Background(), order, "http://localhost/api/login", resty.New(),
		stor, session.NewUserInfoStorage(), tuiApp)
	return page, sw, tuiApp
}

func TestPage(t *testing.T) {
	page, sw, _ := newTestPage(t, portal.All())
	require.NotNil(t, page)
	require.NotNil(t, sw)

	// Страница: заголовок, панель вкладок, контейнер карточек, подсказка
	assert.Equal(t, 4, page.GetItemCount())

	// Карточка каждого портала зарегистрирована в контейнере
	for _, p := range portal.All() {
		assert.True(t, sw.Cards().HasPage(p.CardID()))
	}

	// При старте видима карточка первого портала реестра
	name, _ := sw.Cards().GetFrontPage()
	assert.Equal(t, portal.All()[0].CardID(), name)
}

func TestPageEmptyRegistry(t *testing.T) {
	// Без порталов переключатель не активируется
	page, sw, _ := newTestPage(t, nil)
	require.NotNil(t, page)
	assert.Nil(t, sw)
	assert.Equal(t, 1, page.GetItemCount())
}

func TestPageKeys(t *testing.T) {
	page, sw, tuiApp := newTestPage(t, portal.All())
	require.NotNil(t, sw)

	capture := page.GetInputCapture()
	require.NotNil(t, capture)

	// Фокус на панели вкладок: стрелки листают вкладки
	tuiApp.App.SetFocus(sw.ActiveButton())
	assert.Equal(t, portal.Admin, sw.Active())

	event := capture(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Nil(t, event)
	assert.Equal(t, portal.Cashier, sw.Active())
	assert.Equal(t, sw.ActiveButton(), tuiApp.App.GetFocus())

	event = capture(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Nil(t, event)
	assert.Equal(t, portal.Admin, sw.Active())

	// Tab переводит фокус с панели вкладок на форму активной карточки.
	// Форма передает фокус первому из своих полей.
	event = capture(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.Nil(t, event)
	_, front := sw.Cards().GetFrontPage()
	form, ok := front.(*tview.Form)
	require.True(t, ok)
	assert.Equal(t, form.GetFormItem(0), tuiApp.App.GetFocus())

	// Фокус на форме: Esc возвращает его на панель вкладок
	event = capture(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
	assert.Nil(t, event)
	assert.Equal(t, sw.ActiveButton(), tuiApp.App.GetFocus())

	// Остальные клавиши доходят до формы без перехвата
	tuiApp.App.SetFocus(form)
	event = capture(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	assert.NotNil(t, event)
}
