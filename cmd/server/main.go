package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmmate/config"
	"farmmate/database"
	"farmmate/router"

	// Auth
	authCtrlImp "farmmate/pkg/auth/controllerImp"

	// Plot
	plotCtrlImp "farmmate/pkg/plot/controllerImp"
	plotRepoImp "farmmate/pkg/plot/repositoryImp"
	plotSvcImp "farmmate/pkg/plot/serviceImp"

	// Reminder
	remCtrlImp "farmmate/pkg/reminder/controllerImp"
	remRepoImp "farmmate/pkg/reminder/repositoryImp"
	remSvcImp "farmmate/pkg/reminder/serviceImp"

	// Expense
	expCtrlImp "farmmate/pkg/expense/controllerImp"
	expRepoImp "farmmate/pkg/expense/repositoryImp"
	expSvcImp "farmmate/pkg/expense/serviceImp"

	// Dashboard
	dashCtrlImp "farmmate/pkg/dashboard/controllerImp"

	// Market
	"farmmate/pkg/market"
	marketCtrlImp "farmmate/pkg/market/controllerImp"

	// Profile
	profCtrlImp "farmmate/pkg/profile/controllerImp"
	profRepoImp "farmmate/pkg/profile/repositoryImp"
	profSvcImp "farmmate/pkg/profile/serviceImp"

	// Health
	healthCtrlImp "farmmate/pkg/health/controllerImp"

	"farmmate/pkg/storage"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Profile DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.ProfileDB)

	// 3) Record store — file-backed, in-memory when the data dir is unusable
	var backend storage.Backend
	if fb, err := storage.NewFile(cfg.DataDir); err != nil {
		log.Printf("WARN: %v; records will not survive restarts", err)
		backend = storage.NewMemory()
	} else {
		backend = fb
	}
	store := storage.New(backend, cfg.Debug)

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) Entity services over the record store
	plotSvc := plotSvcImp.NewPlotService(plotRepoImp.New(store))
	remSvc := remSvcImp.NewReminderService(remRepoImp.New(store))
	expSvc := expSvcImp.NewExpenseService(expRepoImp.New(store))

	// 6) Market board — defaults, then local file overrides
	board := market.NewBoard()
	board.LoadFromFiles(cfg.MarketCSV, cfg.MarketXLSX)

	// 7) Controllers + routes
	router.New(
		e,
		plotCtrlImp.New(plotSvc),
		remCtrlImp.New(remSvc),
		expCtrlImp.New(expSvc),
		dashCtrlImp.New(plotSvc, expSvc),
		marketCtrlImp.New(board, cfg.MarketURL),
		profCtrlImp.New(profSvcImp.NewProfileService(profRepoImp.New(db))),
		authCtrlImp.NewAuthController(),
		healthCtrlImp.NewHealthCtrl(db, store),
		cfg.RequireUser,
	)

	log.Printf("[boot] listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
