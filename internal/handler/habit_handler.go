package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeze/backend/internal/service"
)

type HabitHandler struct {
	habitService *service.HabitService
}

type createHabitRequest struct {
	Name string `json:"name"`
}

type toggleHabitRequest struct {
	Date string `json:"date"`
}

func NewHabitHandler(habitService *service.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

func (h *HabitHandler) List(c *gin.Context) {
	habits, apiErr := h.habitService.List(c.Request.Context(), c.Param("context"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	habit, apiErr := h.habitService.Create(c.Request.Context(), c.Param("context"), req.Name)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

func (h *HabitHandler) Toggle(c *gin.Context) {
	var req toggleHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	logged, apiErr := h.habitService.Toggle(c.Request.Context(), c.Param("context"), c.Param("id"), req.Date)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logged": logged})
}

func (h *HabitHandler) Stats(c *gin.Context) {
	stats, apiErr := h.habitService.Stats(c.Request.Context(), c.Param("context"), c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
