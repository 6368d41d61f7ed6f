package main

import (
	"net/http"
	"os"
	"time"

	"schoolhub/api/handler"
	apiMiddleware "schoolhub/api/middleware"
	"schoolhub/api/routes"
	"schoolhub/config"
	"schoolhub/internal/entity"
	"schoolhub/internal/repository"
	"schoolhub/internal/service"
	"schoolhub/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := db.AutoMigrate(
		&entity.Account{},
		&entity.Class{},
		&entity.Subject{},
		&entity.AuditLog{},
	); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	sessionTTL := 7 * 24 * time.Hour
	if raw := os.Getenv("SESSION_TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logger.WithError(err).Fatal("invalid SESSION_TOKEN_TTL")
		}
		sessionTTL = parsed
	}

	jwtManager := utils.JWTManager{
		Secret:          secret,
		Issuer:          os.Getenv("JWT_ISSUER"),
		SessionTokenTTL: sessionTTL,
	}

	accountRepo := repository.NewAccountRepository(db)
	classRepo := repository.NewClassRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	mailer := service.NewResendMailer(os.Getenv("RESEND_API_KEY"), os.Getenv("MAIL_FROM"))

	accountService := service.NewAccountService(
		accountRepo,
		auditRepo,
		mailer,
		service.BcryptPasswordHasher{Cost: 15},
		service.JWTSessionTokens{Manager: &jwtManager},
		service.RealClock{},
		service.AccountConfig{
			OTPTTL:          10 * time.Minute,
			SessionTokenTTL: sessionTTL,
		},
	)
	schoolService := service.NewSchoolService(accountRepo, classRepo, subjectRepo)

	accountHandler := handler.NewAccountHandler(accountService, validate)
	accountHandler.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	accountHandler.SecureCookies = os.Getenv("COOKIE_SECURE") != "false"
	accountHandler.SessionCookieTTL = sessionTTL
	schoolHandler := handler.NewSchoolHandler(schoolService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	sessionMiddleware := apiMiddleware.SessionMiddleware{
		Service:    accountService,
		CookieName: handler.SessionCookieName,
	}
	router := routes.NewRouter(app, accountHandler, schoolHandler, sessionMiddleware)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
