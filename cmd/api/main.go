package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"campusfm/internal/config"
	"campusfm/internal/database"
	"campusfm/internal/domain"
	"campusfm/internal/middleware"
	"campusfm/internal/modules/auth"
	"campusfm/internal/modules/availability"
	"campusfm/internal/modules/equipment"
	"campusfm/internal/modules/lending"
	"campusfm/internal/modules/rooms"
	"campusfm/internal/modules/schedule"
	jwtsvc "campusfm/internal/pkg/jwt"
	"campusfm/internal/repository"
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
	roomRepo := repository.NewRoomRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	lendingRepo := repository.NewLendingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	roomsService := rooms.NewService(roomRepo, departmentRepo)
	roomsHandler := rooms.NewHandler(roomsService)

	equipmentService := equipment.NewService(equipmentRepo)
	equipmentHandler := equipment.NewHandler(equipmentService)

	scheduleService := schedule.NewService(scheduleRepo)
	scheduleHandler := schedule.NewHandler(scheduleService)

	availabilityService := availability.NewService(roomRepo, scheduleRepo)
	hub := availability.NewHub()
	monitor := availability.NewMonitor(availabilityService, hub, cfg.RefreshInterval)
	availabilityHandler := availability.NewHandler(availabilityService, monitor, hub)

	lendingService := lending.NewService(lendingRepo, userRepo)
	lendingHandler := lending.NewHandler(lendingService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		// public: login plus the whole read surface
		authHandler.RegisterRoutes(v1)
		roomsHandler.RegisterPublicRoutes(v1)
		equipmentHandler.RegisterPublicRoutes(v1)
		scheduleHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)

		// protected: everything that writes records
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			roomsHandler.RegisterProtectedRoutes(protected)
			equipmentHandler.RegisterProtectedRoutes(protected)
			scheduleHandler.RegisterProtectedRoutes(protected)
			lendingHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.RequireRole(string(domain.RoleAdmin)))
			lendingHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
