package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeze/backend/internal/handler"
	"meeze/backend/internal/middleware"
)

func New(
	planHandler *handler.PlanHandler,
	calendarHandler *handler.CalendarHandler,
	timerHandler *handler.TimerHandler,
	journalHandler *handler.JournalHandler,
	habitHandler *handler.HabitHandler,
	routineHandler *handler.RoutineHandler,
	corsOrigins []string,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	plan := api.Group("/plan")
	plan.GET("/:context/:date", planHandler.Get)
	plan.PUT("/:context/:date", planHandler.Save)
	plan.POST("/:context/:date/tasks", planHandler.AddTask)
	plan.DELETE("/:context/:date/tasks/:id", planHandler.DeleteTask)

	api.POST("/tasks/move", planHandler.MoveTask)

	calendar := api.Group("/calendar")
	calendar.GET("/:context/:week", calendarHandler.Week)
	calendar.POST("/:context/:week/events", calendarHandler.PlaceEvent)
	calendar.DELETE("/:context/:week/events/:id", calendarHandler.DeleteEvent)

	timers := api.Group("/timers")
	timers.GET("", timerHandler.List)
	timers.POST("", timerHandler.Create)
	timers.POST("/tick", timerHandler.Tick)
	timers.POST("/reconcile", timerHandler.Reconcile)
	timers.POST("/:id/start", timerHandler.Start)
	timers.POST("/:id/pause", timerHandler.Pause)
	timers.POST("/:id/reset", timerHandler.Reset)
	timers.DELETE("/:id", timerHandler.Delete)

	honesty := api.Group("/honesty")
	honesty.GET("", journalHandler.ListHonesty)
	honesty.POST("", journalHandler.AddHonesty)

	taskLogs := api.Group("/task-logs")
	taskLogs.GET("", journalHandler.ListTaskLogs)
	taskLogs.POST("", journalHandler.AddTaskLog)
	taskLogs.GET("/counts", journalHandler.TaskLogCounts)

	habits := api.Group("/habits")
	habits.GET("/:context", habitHandler.List)
	habits.POST("/:context", habitHandler.Create)
	habits.POST("/:context/:id/toggle", habitHandler.Toggle)
	habits.GET("/:context/:id/stats", habitHandler.Stats)

	routines := api.Group("/routines")
	routines.GET("/:context", routineHandler.List)
	routines.POST("/:context", routineHandler.Create)
	routines.PUT("/:context/:id", routineHandler.Update)

	return engine
}
