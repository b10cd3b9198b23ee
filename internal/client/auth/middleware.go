package auth

import (
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"tablepay/internal/client/logger"
	"tablepay/internal/common/tools/id"
)

// OnBeforeMiddleware - мидлварь для маркировки исходящих запросов заголовком X-Request-Id.
// Идентификатор позволяет сопоставить записи в логах клиента и сервера.
func OnBeforeMiddleware() resty.RequestMiddleware {
	return func(c *resty.Client, req *resty.Request) error {
		// Генерирую уникальный идентификатор запроса
		reqID, err := id.GenerateId()
		if err != nil {
			return fmt.Errorf("failed to generate request id, %w", err)
		}
		req.Header.Set("X-Request-Id", reqID)

		logger.ClientLog.Debug("sending request to server",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.String("request id", reqID))
		return nil
	}
}

// OnAfterMiddleware - мидлварь для логирования ответов сервера.
func OnAfterMiddleware() resty.ResponseMiddleware {
	return func(c *resty.Client, res *resty.Response) error {
		logger.ClientLog.Debug("got response from server",
			zap.String("status", strconv.Itoa(res.StatusCode())),
			zap.String("request id", res.Request.Header.Get("X-Request-Id")),
			zap.Duration("duration", res.Time()))
		return nil
	}
}
