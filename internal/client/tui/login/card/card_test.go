package card

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablepay/internal/client/auth"
	"tablepay/internal/client/portal"
	"tablepay/internal/client/storage/session"
	"tablepay/internal/client/tui/app"
	"tablepay/internal/repositories/login"
	"tablepay/internal/repositories/mocks"
)

// newTestApp - приложение с контейнером страниц без запущенного цикла событий.
func newTestApp() *app.App {
	return &app.App{
		App:   tview.NewApplication(),
		Pages: tview.NewPages(),
	}
}

func newTestForm(t *testing.T, p portal.Portal) *tview.Form {
	ctrl := gomock.NewController(t)
	stor := mocks.NewMockIKeyValueStorage(ctrl)

	return New(context.Background(), p, "http://localhost/api/login", resty.New(),
		stor, session.NewUserInfoStorage(), newTestApp())
}

func TestNew(t *testing.T) {
	form := newTestForm(t, portal.Admin)

	// Форма должна содержать поля email и пароля
	require.Equal(t, 2, form.GetFormItemCount(), "form must contain 2 fields")

	label := form.GetFormItem(0).GetLabel()
	assert.Equal(t, EmailLabel, label)

	label = form.GetFormItem(1).GetLabel()
	assert.Equal(t, PasswordLabel, label)

	// Кнопка отправки должна содержать имя портала
	require.Equal(t, 1, form.GetButtonCount(), "form must contain the submit button")
	assert.Equal(t, "Login as Admin", form.GetButton(submitIndex).GetLabel())
	assert.False(t, form.GetButton(submitIndex).IsDisabled())

	// Симулирую ввод данных в поля
	{
		field := form.GetFormItem(0).(*tview.InputField)
		message := "alice@example.com"
		field.SetText(message)
		assert.Equal(t, message, field.GetText())
	}
	{
		field := form.GetFormItem(1).(*tview.InputField)
		message := "secret"
		field.SetText(message)
		assert.Equal(t, message, field.GetText())
	}
}

func TestSubmitLabels(t *testing.T) {
	// Подпись кнопки отправки строится по шаблону для каждого портала
	tests := []struct {
		name   string
		portal portal.Portal
		want   string
	}{
		{
			name:   "admin card",
			portal: portal.Admin,
			want:   "Login as Admin",
		},
		{
			name:   "cashier card",
			portal: portal.Cashier,
			want:   "Login as Cashier",
		},
		{
			name:   "kitchen card",
			portal: portal.Kitchen,
			want:   "Login as Kitchen",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newTestForm(t, tt.portal)
			assert.Equal(t, tt.want, form.GetButton(submitIndex).GetLabel())
		})
	}
}

func TestBegin(t *testing.T) {
	form := newTestForm(t, portal.Cashier)

	begin(form)

	// На время запроса кнопка заблокирована, подпись заменена
	submit := form.GetButton(submitIndex)
	assert.True(t, submit.IsDisabled())
	assert.Equal(t, PendingLabel, submit.GetLabel())
}

func TestDoneError(t *testing.T) {
	form := newTestForm(t, portal.Admin)
	tuiApp := newTestApp()

	// Кнопка была заблокирована отправкой формы
	begin(form)

	done(form, portal.Admin, tuiApp, nil, &auth.Error{
		Kind:    auth.KindServer,
		Message: "Invalid email or password.",
	})

	// Кнопка возвращена в исходное состояние
	submit := form.GetButton(submitIndex)
	assert.False(t, submit.IsDisabled())
	assert.Equal(t, "Login as Admin", submit.GetLabel())

	// Поверх страниц отображается блокирующее окно с ошибкой
	assert.True(t, tuiApp.Pages.HasPage("error"))
	name, _ := tuiApp.Pages.GetFrontPage()
	assert.Equal(t, "error", name)
}

func TestDoneSuccess(t *testing.T) {
	form := newTestForm(t, portal.Cashier)
	tuiApp := newTestApp()

	// Регистрирую страницы, между которыми выполняется переход
	tuiApp.Pages.AddPage("login", tview.NewBox(), true, true)
	tuiApp.Pages.AddPage("cashier_dashboard", tview.NewBox(), true, false)
	tuiApp.SwitchTo("login")

	// Пользователь ввел пароль, кнопка была заблокирована отправкой формы
	form.GetFormItemByLabel(PasswordLabel).(*tview.InputField).SetText("secret")
	begin(form)

	done(form, portal.Cashier, tuiApp, &auth.Result{Dashboard: "cashier_dashboard"}, nil)

	// Кнопка возвращена в исходное состояние до перехода на рабочий стол
	submit := form.GetButton(submitIndex)
	assert.False(t, submit.IsDisabled())
	assert.Equal(t, "Login as Cashier", submit.GetLabel())

	// Поле пароля очищено
	assert.Equal(t, "", form.GetFormItemByLabel(PasswordLabel).(*tview.InputField).GetText())

	// Выполнен переход на страницу рабочего стола из результата входа
	name, _ := tuiApp.Pages.GetFrontPage()
	assert.Equal(t, "cashier_dashboard", name)
}

func TestEditDuringRequest(t *testing.T) {
	// сервер сохраняет тело запроса, которое отправил клиент
	got := make(chan login.Request, 1)
	r := chi.NewRouter()
	r.Post(login.Path, func(res http.ResponseWriter, req *http.Request) {
		var reqData login.Request
		dec := json.NewDecoder(req.Body)
		require.NoError(t, dec.Decode(&reqData))
		got <- reqData

		res.Header().Set("Content-Type", "application/json")
		res.WriteHeader(http.StatusUnauthorized)
		_, err := res.Write([]byte(`{"detail":"Invalid email or password."}`))
		require.NoError(t, err)
	})

	// Запускаю тестовый сервер
	ts := httptest.NewServer(r)
	defer ts.Close()

	ctrl := gomock.NewController(t)
	stor := mocks.NewMockIKeyValueStorage(ctrl)
	form := New(context.Background(), portal.Cashier, ts.URL+login.Path, resty.New(),
		stor, session.NewUserInfoStorage(), newTestApp())

	// Заполняю поля формы и нажимаю Enter на кнопке отправки
	email := form.GetFormItemByLabel(EmailLabel).(*tview.InputField)
	password := form.GetFormItemByLabel(PasswordLabel).(*tview.InputField)
	email.SetText("carol@example.com")
	password.SetText("secret")

	handler := form.GetButton(submitIndex).InputHandler()
	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(p tview.Primitive) {})

	// Кнопка заблокирована на время запроса
	assert.True(t, form.GetButton(submitIndex).IsDisabled())
	assert.Equal(t, PendingLabel, form.GetButton(submitIndex).GetLabel())

	// Пользователь продолжает редактировать поля, пока запрос выполняется
	email.SetText("carol-edited@example.com")
	password.SetText("edited")

	// Сервер должен получить данные формы на момент отправки
	reqData := <-got
	assert.Equal(t, login.Request{
		Portal:   "cashier",
		Email:    "carol@example.com",
		Password: "secret",
	}, reqData)
}
