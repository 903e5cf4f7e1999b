package main

import (
	"net/http"
	"os"
	"time"

	"legalconnect/api/handler"
	apiMiddleware "legalconnect/api/middleware"
	"legalconnect/api/routes"
	"legalconnect/config"
	"legalconnect/internal/repository"
	"legalconnect/internal/service"
	"legalconnect/internal/utils"

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

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	issuer := os.Getenv("JWT_ISSUER")
	if len(jwtSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	tokenManager := utils.JWTManager{
		Secret:   jwtSecret,
		Issuer:   issuer,
		TokenTTL: 30 * 24 * time.Hour,
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = os.Getenv("JWT_SECRET")
	}
	continuations := service.ContinuationIssuerJWT{
		Secret: []byte(sessionSecret),
		Issuer: issuer,
		TTL:    10 * time.Minute,
	}

	userRepo := repository.NewUserRepository(db)
	lawyerRepo := repository.NewLawyerRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	emailSender := service.NewResendEmailSender(os.Getenv("RESEND_API_KEY"), os.Getenv("EMAIL_FROM"))

	authService := service.NewAuthService(
		userRepo,
		lawyerRepo,
		auditRepo,
		service.BcryptPasswordHasher{Cost: 10},
		tokenManager,
		emailSender,
		service.RealClock{},
	)

	google := service.NewGoogleOAuthProvider(
		os.Getenv("GOOGLE_CLIENT_ID"),
		os.Getenv("GOOGLE_CLIENT_SECRET"),
		os.Getenv("GOOGLE_CALLBACK_URL"),
	)
	if !google.Configured() {
		logger.Warn("google oauth credentials missing; /auth/google will fail")
	}
	oauthService := service.NewOAuthService(userRepo, lawyerRepo, authService, continuations)

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	authHandler := handler.NewAuthHandler(authService, oauthService, google, validate, logger, frontendURL)
	authHandler.SecureCookies = os.Getenv("COOKIE_SECURE") != "false"
	userHandler := handler.NewUserHandler(authService, logger)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{frontendURL},
		AllowCredentials: true,
	}))
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

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &tokenManager, Accounts: authService}
	router := routes.NewRouter(app, authHandler, userHandler, authMiddleware)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":5001"
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
