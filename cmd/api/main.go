package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Userdead-19/labs-cse/internal/config"
	"github.com/Userdead-19/labs-cse/internal/database"
	"github.com/Userdead-19/labs-cse/internal/middleware"
	"github.com/Userdead-19/labs-cse/internal/modules/auth"
	"github.com/Userdead-19/labs-cse/internal/modules/booking"
	"github.com/Userdead-19/labs-cse/internal/modules/catalog"
	"github.com/Userdead-19/labs-cse/internal/modules/examperiod"
	"github.com/Userdead-19/labs-cse/internal/modules/feed"
	jwtsvc "github.com/Userdead-19/labs-cse/internal/pkg/jwt"
	"github.com/Userdead-19/labs-cse/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	labRepo := repository.NewLabRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	examPeriodRepo := repository.NewExamPeriodRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(labRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, labRepo, hub, cfg.BookingHorizonDays)
	bookingHandler := booking.NewHandler(bookingService)

	examPeriodService := examperiod.NewService(examPeriodRepo, labRepo)
	examPeriodHandler := examperiod.NewHandler(examPeriodService)

	feedHandler := feed.NewHandler(hub, j)

	bookingAccess := middleware.NewBookingAccessChecker(bookingRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	feedHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterRoutes(v1, protected, middleware.AdminOnly())
			bookingHandler.RegisterRoutes(protected, middleware.AdminOnly(), bookingAccess.OwnerOrAdmin())
			examPeriodHandler.RegisterRoutes(protected, middleware.AdminOnly())
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
