package main

import (
	"log"

	"meeze/backend/internal/config"
	"meeze/backend/internal/db"
	"meeze/backend/internal/handler"
	"meeze/backend/internal/kv"
	"meeze/backend/internal/notify"
	"meeze/backend/internal/repository"
	"meeze/backend/internal/router"
	"meeze/backend/internal/service"
)

func main() {
	cfg := config.Load()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	store := kv.NewStore(database)
	planRepo := repository.NewPlanRepository(store)
	calendarRepo := repository.NewCalendarRepository(store)
	timerRepo := repository.NewTimerRepository(store)
	journalRepo := repository.NewJournalRepository(store)
	habitRepo := repository.NewHabitRepository(store)
	routineRepo := repository.NewRoutineRepository(store)

	scheduler := notify.NewLogScheduler()

	planService := service.NewPlanService(planRepo, calendarRepo, store)
	linkService := service.NewLinkService(planRepo, calendarRepo, store)
	calendarService := service.NewCalendarService(calendarRepo)
	timerService := service.NewTimerService(timerRepo, scheduler)
	journalService := service.NewJournalService(journalRepo)
	habitService := service.NewHabitService(habitRepo)
	routineService := service.NewRoutineService(routineRepo)

	engine := router.New(
		handler.NewPlanHandler(planService, linkService),
		handler.NewCalendarHandler(calendarService),
		handler.NewTimerHandler(timerService),
		handler.NewJournalHandler(journalService),
		handler.NewHabitHandler(habitService),
		handler.NewRoutineHandler(routineService),
		cfg.CORSOrigins,
	)

	log.Printf("backend listening on :%s", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
