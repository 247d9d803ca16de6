package http

import (
	"strings"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ownerKey     = "owner"
	requestIDKey = "requestid"
	bearerPrefix = "bearer "
)

var errUnauthorized = fiber.NewError(fiber.StatusUnauthorized, "Could not validate credentials")

type Middleware struct {
	appName string
	secret  []byte
	fiber   *fiber.App
	onError fiber.ErrorHandler
	logger  *logrus.Logger
}

func NewMiddleware(fiber *fiber.App, appName, jwtSecret string, logger *logrus.Logger) *Middleware {
	return &Middleware{
		appName: appName,
		secret:  []byte(jwtSecret),
		fiber:   fiber,
		onError: ErrorHandler(logger),
		logger:  logger,
	}
}

// Register installs the global chain. Route groups add Auth on their own.
func (m *Middleware) Register() {
	m.useRecover()
	m.useRequestID()
	m.useCORS()
	m.useMetrics()
	m.useAccessLog()
}

func (m *Middleware) useRecover() {
	m.fiber.Use(recover.New())
}

func (m *Middleware) useRequestID() {
	m.fiber.Use(requestid.New(requestid.Config{
		ContextKey: requestIDKey,
		Generator:  uuid.NewString,
	}))
}

func (m *Middleware) useCORS() {
	m.fiber.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodPatch,
			fiber.MethodDelete,
			fiber.MethodHead,
			fiber.MethodOptions,
		}, ","),
	}))
}

func (m *Middleware) useMetrics() {
	prometheus := fiberprometheus.New(m.appName)
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}

// useAccessLog resolves chain errors itself so the logged status is the one sent.
func (m *Middleware) useAccessLog() {
	m.fiber.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if hErr := m.onError(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		requestID, _ := c.Locals(requestIDKey).(string)

		m.logger.
			WithField("request_id", requestID).
			WithField("method", c.Method()).
			WithField("path", c.Path()).
			WithField("status", c.Response().StatusCode()).
			WithField("latency", time.Since(start).String()).
			Info("request")

		return nil
	})
}

// Auth reads the caller identity from the bearer token's subject claim.
func (m *Middleware) Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return errUnauthorized
		}

		token, err := jwt.Parse(
			strings.TrimSpace(header[len(bearerPrefix):]),
			func(*jwt.Token) (interface{}, error) { return m.secret, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			m.logger.
				WithField("method", "Auth").
				WithError(err).
				Debug("rejected bearer token")

			return errUnauthorized
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			return errUnauthorized
		}

		c.Locals(ownerKey, subject)

		return c.Next()
	}
}

func owner(c *fiber.Ctx) string {
	id, _ := c.Locals(ownerKey).(string)
	return id
}
