package server

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog/log"

	"github.com/zalepa/nbastandings/config"
)

// ServiceName labels the Prometheus metrics.
const ServiceName = "nbastandings"

var registerPromOnce sync.Once

// Create builds the fiber app with the shared middleware stack. Routes are
// added by Register.
func Create(conf *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "NBA Standings Dashboard",
		ReadTimeout:           time.Second * 20,
		WriteTimeout:          time.Second * 20,
		ErrorHandler:          ErrorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recoverConfig(conf)))
	app.Use(requestid.New())
	app.Use(accessLog())
	app.Use(favicon.New())

	if conf.MetricsEnabled {
		registerPromOnce.Do(func() {
			prom := fiberprometheus.New(ServiceName)
			prom.RegisterAt(app, "/metrics")
			app.Use(prom.Middleware)
		})
	}

	if conf.DevMode {
		log.Info().Msg("running in DEV mode")
	}

	return app
}

// recoverConfig logs the panicking goroutine's stack only in dev mode.
func recoverConfig(conf *config.Config) recover.Config {
	return recover.Config{
		EnableStackTrace: conf.DevMode,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}
}

// accessLog writes one line per request. Errors are rendered here so the
// logged status is the one the client receives.
func accessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		log.Info().
			Str("component", "httpreq").
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Int("size", len(c.Response().Body())).
			Dur("duration", time.Since(start)).
			Msg("received request")
		return nil
	}
}

func handleAPIError(c *fiber.Ctx, e *APIError) error {
	log.Warn().
		Err(e).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(e.Message)

	return c.Status(e.StatusCode).JSON(fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	})
}

// ErrorHandler renders *APIError and *fiber.Error values as the JSON error
// envelope; anything else is an internal error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return handleAPIError(c, apiErr)
	}

	re := *ErrInternalError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", re.StatusCode).
		Msg("request failed")

	return handleAPIError(c, &re)
}
