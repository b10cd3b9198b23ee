// Пакет dashboard содержит страницы рабочих столов порталов TablePay.
package dashboard

import (
	"context"
	"fmt"

	"github.com/rivo/tview"
	"go.uber.org/zap"

	"tablepay/internal/client/logger"
	"tablepay/internal/client/portal"
	"tablepay/internal/client/storage"
	"tablepay/internal/client/tui"
	"tablepay/internal/client/tui/app"
)

// Page - страница рабочего стола портала p. Страница заново читает имя и портал
// пользователя из локального хранилища при каждом получении фокуса,
// данные на ней всегда соответствуют последнему входу.
func Page(ctx context.Context, p portal.Portal, stor storage.ValueGetter) func(tuiApp *app.App) tview.Primitive {
	return func(tuiApp *app.App) tview.Primitive {
		welcome := tview.NewTextView().SetTextAlign(tview.AlignCenter)

		refresh := func() {
			welcome.SetText(welcomeText(ctx, p, stor))
		}
		refresh()

		list := tview.NewList().
			AddItem("Refresh", "", 'r', refresh).
			AddItem("Back to login", "", 'q', func() { tuiApp.SwitchTo(tui.Login) }).
			AddItem("Exit", "", 'x', func() { tuiApp.App.Stop() })

		// Переход на страницу передает фокус списку
		list.SetFocusFunc(refresh)

		list.SetBorder(true).SetTitle(p.Label() + " Dashboard")

		return tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(welcome, 3, 1, false).
			AddItem(list, 0, 1, true)
	}
}

// welcomeText - приветствие рабочего стола по данным локального хранилища.
// Значения отображаются в том виде, в каком их сохранила страница входа.
func welcomeText(ctx context.Context, p portal.Portal, stor storage.ValueGetter) string {
	name, ok, err := stor.Get(ctx, storage.KeyUserName)
	if err != nil {
		logger.ClientLog.Error("failed to read user name from local storage", zap.String("error", err.Error()))
		return "Failed to read user data from local storage."
	}
	if !ok {
		return "Welcome! No user data in local storage yet."
	}

	userPortal, ok, err := stor.Get(ctx, storage.KeyUserPortal)
	if err != nil {
		logger.ClientLog.Error("failed to read user portal from local storage", zap.String("error", err.Error()))
		return "Failed to read user data from local storage."
	}
	if !ok {
		userPortal = p.Label()
	}

	return fmt.Sprintf("Welcome, %s! You are logged in to the %s portal.", name, userPortal)
}
