package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadp "github.com/AhmadTubaileh/Software-project-sub000/internal/adapter/http"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/adapter/middleware"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/adapter/repository/mysql"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/config"
	approvalDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/approval"
	contractDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
	customerDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/customer"
	itemDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
	paymentDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/payment"
	saleDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/sale"
	stocklogDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/stocklog"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/uow"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/infrastructure/cache"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/infrastructure/db"
	checkoutUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/checkout"
	contractUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/contract"
	itemUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/item"
	paymentUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/payment"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mysql")
	}
	if cfg.AutoMigrate {
		if err := gdb.AutoMigrate(
			&itemDomain.Item{},
			&stocklogDomain.Entry{},
			&saleDomain.Sale{},
			&customerDomain.Customer{},
			&customerDomain.Sponsor{},
			&contractDomain.Contract{},
			&approvalDomain.Approval{},
			&paymentDomain.ScheduleEntry{},
			&paymentDomain.Transaction{},
		); err != nil {
			log.Fatal().Err(err).Msg("auto-migrate failed")
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	repos := uow.Repos{
		Items:     mysql.NewItemRepository(gdb),
		StockLogs: mysql.NewStockLogRepository(gdb),
		Sales:     mysql.NewSaleRepository(gdb),
		Contracts: mysql.NewContractRepository(gdb),
		Approvals: mysql.NewApprovalRepository(gdb),
		Customers: mysql.NewCustomerRepository(gdb),
		Payments:  mysql.NewPaymentRepository(gdb),
	}
	guow := mysql.NewGormUoW(gdb)

	contracts := contractUC.NewUsecase(repos, guow, log.Logger)
	payments := paymentUC.NewUsecase(repos, guow, log.Logger)
	checkout := checkoutUC.NewUsecase(guow, log.Logger)
	items := itemUC.NewUsecase(repos)

	h := httpadp.NewHandler()
	ch := httpadp.NewContractHandler(contracts)
	ph := httpadp.NewPaymentHandler(payments)
	ih := httpadp.NewItemHandler(items, checkout)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	e.GET("/items", ih.List)
	e.GET("/items/:item_id", ih.Get)

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.POST("/checkout", ih.Checkout, idemp)

	e.POST("/contracts", ch.Apply, idemp)
	e.GET("/contracts/pending", ch.ListPending)
	e.GET("/contracts/:contract_id", ch.Get)
	e.POST("/contracts/:contract_id/approve", ch.Approve, idemp)
	e.POST("/contracts/:contract_id/reject", ch.Reject, idemp)

	e.POST("/payments/:payment_id", ph.Apply, idemp)
	e.GET("/payments/overdue", ph.Overdue)
	e.GET("/sales/:sale_id/payments", ph.Schedule)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
