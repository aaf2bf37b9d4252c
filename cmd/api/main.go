package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "profitshare-backend/internal/adapter/http"
	mw "profitshare-backend/internal/adapter/middleware"
	"profitshare-backend/internal/adapter/repository/mysql"
	"profitshare-backend/internal/config"
	"profitshare-backend/internal/domain/investor"
	"profitshare-backend/internal/domain/order"
	"profitshare-backend/internal/domain/reference"
	"profitshare-backend/internal/domain/rotation"
	"profitshare-backend/internal/infrastructure/cache"
	"profitshare-backend/internal/infrastructure/db"
	"profitshare-backend/internal/usecase/allocation"
	"profitshare-backend/internal/usecase/registry"
	"profitshare-backend/internal/usecase/stats"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&investor.Investor{}, &order.Order{}, &reference.Reference{}, &rotation.Cursor{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	investors := mysql.NewInvestorRepository(gdb)
	orders := mysql.NewOrderRepository(gdb)
	references := mysql.NewReferenceRepository(gdb)
	cursors := mysql.NewCursorRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	allocUC := allocation.NewUsecase(investors, orders, references, cursors, unit)
	statsUC := stats.NewUsecase(investors, orders, rdb, time.Duration(cfg.StatsCacheTTLSecs)*time.Second)
	registryUC := registry.NewUsecase(investors, references)

	h := httpadp.NewHandler()
	allocH := httpadp.NewAllocationHandler(allocUC, orders)
	statsH := httpadp.NewStatsHandler(statsUC)
	registryH := httpadp.NewRegistryHandler(registryUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.POST("/investors", registryH.RegisterInvestor, idemp)
	e.POST("/references", registryH.RegisterReference, idemp)
	e.POST("/orders/:order_id/profit/preassign", allocH.PreAssign, idemp)
	e.POST("/orders/:order_id/profit/finalize", allocH.Finalize, idemp)
	e.GET("/investors/:investor_id/stats", statsH.GetInvestorStats)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
