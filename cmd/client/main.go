package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"tablepay/internal/client/auth"
	"tablepay/internal/client/identity"
	"tablepay/internal/client/logger"
	"tablepay/internal/client/portal"
	"tablepay/internal/client/storage"
	"tablepay/internal/client/storage/local"
	"tablepay/internal/client/storage/session"
	"tablepay/internal/client/tui"
	"tablepay/internal/client/tui/app"
	"tablepay/internal/client/tui/dashboard"
	"tablepay/internal/client/tui/login"
	repoLogin "tablepay/internal/repositories/login"
)

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// инициализация логера
	if err := logger.Initialize(logLevel, logFile); err != nil {
		log.Fatalf("Error starting client: %v", err)
	}

	// Проверяю реестр порталов перед построением интерфейса
	if err := portal.Validate(); err != nil {
		log.Fatalf("Invalid portal registry: %v", err)
	}

	// Открываю локальное хранилище клиента
	ctx := context.Background()
	stor, err := local.NewStore(ctx, storagePath)
	if err != nil {
		log.Fatalf("Error open local storage: %v by path %s", err, storagePath)
	}
	defer stor.Close()

	// Инициализирую хранилище сведений о пользователе в оперативной памяти
	info := session.NewUserInfoStorage()

	// Инициализирую resty клиента
	client := resty.New()

	// ------------------------------------------------------------------------------
	run(ctx, client, stor, info)
}

// run - устанавливает мидлвари клиента и управляет жизненным циклом интерфейса.
func run(ctx context.Context, client *resty.Client, stor storage.IKeyValueStorage, info identity.IUserInfoStorage) {
	// Устанавливаю мидлвари для resty клиента
	client.OnBeforeRequest(auth.OnBeforeMiddleware())
	client.OnAfterResponse(auth.OnAfterMiddleware())

	// Добавляю многопоточность
	var wg sync.WaitGroup

	// Create a context with cancel function for graceful shutdown
	ctx, cancelCtx := context.WithCancel(ctx)

	// Создаю TUI интерфейс
	tuiApp := createTUI(ctx, client, stor, info)

	// Запускаю интерфейс в отдельной горутине
	go func() {
		if err := tuiApp.Run(); err != nil {
			logger.ClientLog.Error("tui stopped with error", zap.String("error", err.Error()))
		}
		// Завершение интерфейса пользователем завершает приложение
		cancelCtx()
	}()

	// Горутина для остановки TUI при завершении контекста
	wg.Add(1)
	go func() {
		defer wg.Done()

		// ожидаю завершения контекста
		<-ctx.Done()

		// Завершаю работу интерфейса
		tuiApp.Stop()
	}()

	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	// или пользователь не завершит интерфейс сам
	select {
	case <-quit:
		logger.ClientLog.Info("Shutting down client...")
		cancelCtx()
	case <-ctx.Done():
	}

	// Ожидаю завершения работы всех горутин
	wg.Wait()

	logger.ClientLog.Info("Shutdown the client gracefully")
}

// createTUI - регистрирует страницы интерфейса: рабочие столы порталов и страницу входа.
func createTUI(ctx context.Context, client *resty.Client, stor storage.IKeyValueStorage, info identity.IUserInfoStorage) *app.App {
	// создаю страницы TUI
	prims := []app.Primitives{}

	// Добавляю страницу рабочего стола каждого портала под именем его маршрута
	for _, p := range portal.All() {
		prims = append(prims, app.Primitives{
			Name: p.DashboardRoute(),
			Prim: dashboard.Page(ctx, p, stor),
		})
	}

	// Добавляю страницу входа последней, она отображается при старте
	prims = append(prims, app.Primitives{
		Name: tui.Login,
		Prim: login.Page(ctx, netAddr+repoLogin.Path, client, stor, info),
	})

	return app.NewApp(prims)
}
