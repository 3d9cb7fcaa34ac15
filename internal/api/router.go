package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/synchome/apartment-system/docs"
	"github.com/synchome/apartment-system/internal/api/handler"
	"github.com/synchome/apartment-system/internal/api/middleware"
	"github.com/synchome/apartment-system/internal/api/session"
	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/service"
	"github.com/synchome/apartment-system/internal/infrastructure/config"
	mongodb "github.com/synchome/apartment-system/internal/infrastructure/db/mongo"
	redisdb "github.com/synchome/apartment-system/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. The three
// authorization filters (verify, identity match, role check) are compiled
// once here and attached declaratively to each route's capability set.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("synchome"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	apartmentRepo := mongodb.NewApartmentRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	communityRepo := mongodb.NewCommunityRepository(db)
	trashRepo := mongodb.NewTrashRepository(db)

	sessions := service.NewSessionService(cfg.JWTSecret, session.TokenTTL)
	users := service.NewUserService(userRepo)
	apartments := service.NewApartmentService(apartmentRepo)
	reports := service.NewReportService(reportRepo, redisdb.NewReportDeduper(rdb), log)
	requests := service.NewRequestService(requestRepo)
	notifications := service.NewNotificationService(notificationRepo, trashRepo, log)
	community := service.NewCommunityService(communityRepo, trashRepo)

	sessionHandler := handler.NewSessionHandler(sessions, cfg.Production())
	userHandler := handler.NewUserHandler(users)
	apartmentHandler := handler.NewApartmentHandler(apartments)
	reportHandler := handler.NewReportHandler(reports)
	requestHandler := handler.NewRequestHandler(requests)
	notificationHandler := handler.NewNotificationHandler(notifications)
	communityHandler := handler.NewCommunityHandler(community)

	// --- Authorization pipeline, compiled once ---
	verify := middleware.Session(sessions)
	authed := []echo.MiddlewareFunc{verify}
	employee := []echo.MiddlewareFunc{verify, middleware.MatchIdentity(), middleware.RequireRole(users, domain.RoleEmployee)}
	admin := []echo.MiddlewareFunc{verify, middleware.MatchIdentity(), middleware.RequireRole(users, domain.RoleAdmin)}

	// --- Ops surface ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "SyncHome App is running")
	})
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.Static("/assets", cfg.StaticDir)

	v1 := e.Group("/api/v1")

	// --- Auth ---
	v1.POST("/auth/session", sessionHandler.Login)
	v1.POST("/auth/logout", sessionHandler.Logout)
	v1.POST("/new-user", userHandler.Create)

	// --- Users ---
	v1.GET("/users", userHandler.List, admin...)
	v1.GET("/users/:email", userHandler.GetByEmail, authed...)
	v1.GET("/user-role/:email", userHandler.Role, authed...)
	v1.PATCH("/update-user/:id", userHandler.Update, admin...)
	v1.DELETE("/delete-user/:id", userHandler.Delete, admin...)
	v1.PUT("/update-profile/:email", userHandler.SaveProfile, authed...)
	v1.PUT("/user-login-activity/:email", userHandler.RecordLogin, authed...)

	// --- Apartments ---
	v1.GET("/apartments", apartmentHandler.List, authed...)
	v1.GET("/apartments/:email", apartmentHandler.GetByEmail, authed...)
	v1.PUT("/apartments/:id", apartmentHandler.AddDevice, authed...)
	v1.PUT("/apartments/members/:id", apartmentHandler.SetMembers, authed...)
	v1.PUT("/apartments/wifi/:id", apartmentHandler.ConfigureWifi, authed...)
	v1.PUT("/apartments/ac/:id", apartmentHandler.ConfigureAC, authed...)
	v1.PUT("/apartments/cctv/:id", apartmentHandler.ConfigureCCTV, authed...)
	v1.PUT("/apartments/total/:id", apartmentHandler.SetEnergyTotals, authed...)
	v1.PUT("/apartments/weekly/:id", apartmentHandler.SetWeeklyUsage, authed...)
	v1.PUT("/apartments/del-device/:id", apartmentHandler.RemoveDevice, authed...)
	v1.PUT("/apartments/device-switch/:id", apartmentHandler.SwitchDevice, authed...)
	v1.PUT("/apartments/simple-switch/:id", apartmentHandler.SwitchComponent, authed...)
	v1.PATCH("/apartments/actemp/:id", apartmentHandler.SetACTemp, authed...)
	v1.PATCH("/apartments/acmode/:id", apartmentHandler.SetACMode, authed...)

	// --- Reports ---
	v1.POST("/report", reportHandler.Submit, authed...)
	v1.GET("/report", reportHandler.ListOwn, authed...)
	v1.GET("/reports", reportHandler.List, employee...)
	v1.GET("/reports/:id", reportHandler.Get, employee...)
	v1.PATCH("/reports/:id", reportHandler.Resolve, employee...)

	// --- Requests ---
	v1.POST("/requests", requestHandler.Submit, authed...)
	v1.GET("/requests", requestHandler.List, employee...)
	v1.GET("/request/:email", requestHandler.GetByEmail, authed...)
	v1.PATCH("/requests/:id", requestHandler.SetStatus, employee...)

	// --- Notifications ---
	v1.POST("/notifications", notificationHandler.Publish, admin...)
	v1.GET("/notifications", notificationHandler.List, authed...)
	v1.GET("/notifications/:id", notificationHandler.Get, authed...)
	v1.DELETE("/remove-notification/:id", notificationHandler.Remove, admin...)

	// --- Community ---
	v1.GET("/events", communityHandler.ListEvents, authed...)
	v1.POST("/washing-machine", communityHandler.BookWashing, authed...)
	v1.GET("/washing-machine", communityHandler.ListWashing, authed...)
	v1.POST("/trash", communityHandler.ArchiveTrash, authed...)

	return e
}
