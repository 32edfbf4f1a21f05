package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeze/backend/internal/service"
)

type TimerHandler struct {
	timerService *service.TimerService
}

type createTimerRequest struct {
	Name            string `json:"name"`
	DurationSeconds int    `json:"durationSeconds"`
}

func NewTimerHandler(timerService *service.TimerService) *TimerHandler {
	return &TimerHandler{timerService: timerService}
}

func (h *TimerHandler) List(c *gin.Context) {
	timers, apiErr := h.timerService.List(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timers": timers})
}

func (h *TimerHandler) Create(c *gin.Context) {
	var req createTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	timer, apiErr := h.timerService.Create(c.Request.Context(), req.Name, req.DurationSeconds)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"timer": timer})
}

func (h *TimerHandler) Start(c *gin.Context) {
	timer, apiErr := h.timerService.Start(c.Request.Context(), c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timer": timer})
}

func (h *TimerHandler) Pause(c *gin.Context) {
	timer, apiErr := h.timerService.Pause(c.Request.Context(), c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timer": timer})
}

func (h *TimerHandler) Reset(c *gin.Context) {
	timer, apiErr := h.timerService.Reset(c.Request.Context(), c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timer": timer})
}

func (h *TimerHandler) Delete(c *gin.Context) {
	if apiErr := h.timerService.Delete(c.Request.Context(), c.Param("id")); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TimerHandler) Tick(c *gin.Context) {
	timers, apiErr := h.timerService.Tick(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timers": timers})
}

func (h *TimerHandler) Reconcile(c *gin.Context) {
	timers, apiErr := h.timerService.Reconcile(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timers": timers})
}
