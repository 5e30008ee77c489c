package httpEngine

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/boj/redistore"
	"github.com/gomodule/redigo/redis"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/youngnam81-kim/gov-bid-web/configs"
	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
	"github.com/youngnam81-kim/gov-bid-web/internal/logics"
)

type Server struct {
	e *echo.Echo
}

// NewServer instantiates Echo, initializes the session store, and registers routes.
func NewServer(api *backend.Client, boards *logics.BoardService, details *logics.DetailRegistry) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = echo.ExtractIPFromRealIPHeader()

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig()))
	e.Use(middleware.Recover())

	store, err := initSessionStore()
	if err != nil {
		return nil, err
	}
	e.Use(session.Middleware(store))

	RegisterRoutes(e, api, boards, details)

	return &Server{e: e}, nil
}

// Start runs the Echo server on the configured HTTP port.
func (s *Server) Start() error {
	return s.e.Start(":" + configs.Configs.Service.HttpPort)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// initSessionStore는 세션 스토어를 초기화합니다. Redis 주소가 설정되어
// 있으면 Redis 기반, 아니면 쿠키 기반 스토어를 사용합니다.
func initSessionStore() (sessions.Store, error) {
	secret := []byte(configs.Configs.Session.Secret)
	opts := &sessions.Options{
		Path:     "/",
		MaxAge:   configs.Configs.Session.ExpireMin * 60,
		HttpOnly: true,
		Secure:   configs.Configs.Session.Secure,
	}

	if configs.Configs.Redis.Address == "" {
		store := sessions.NewCookieStore(secret)
		store.Options = opts
		return store, nil
	}

	// redigo 기반의 redis 연결 풀 생성
	pool := &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			var options []redis.DialOption
			if configs.Configs.Redis.Username != "" {
				options = append(options, redis.DialUsername(configs.Configs.Redis.Username))
			}
			if configs.Configs.Redis.Password != "" {
				options = append(options, redis.DialPassword(configs.Configs.Redis.Password))
			}
			if configs.Configs.Redis.Tls {
				options = append(options,
					redis.DialUseTLS(true),
					redis.DialTLSConfig(&tls.Config{InsecureSkipVerify: true}),
				)
			}
			return redis.Dial("tcp", configs.Configs.Redis.Address, options...)
		},
	}

	store, err := redistore.NewRediStoreWithPool(pool, secret)
	if err != nil {
		configs.Logger.Error("Failed to create Redis-based session store", zap.Error(err))
		return nil, err
	}
	store.SetKeyPrefix("session:")
	store.Options = opts

	configs.Logger.Info("Session store initialized",
		zap.String("redisAddress", configs.Configs.Redis.Address),
		zap.Int("sessionExpireMin", configs.Configs.Session.ExpireMin),
	)
	return store, nil
}

func requestLoggerConfig() middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogLatency:   true,
		LogRemoteIP:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogError:     true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.String("request.user_agent", v.UserAgent),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				configs.Logger.Error("Request log with error", fields...)
				return nil
			}
			configs.Logger.Info("Request log", fields...)
			return nil
		},
	}
}
