package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeze/backend/internal/model"
	"meeze/backend/internal/service"
)

type RoutineHandler struct {
	routineService *service.RoutineService
}

type createRoutineRequest struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func NewRoutineHandler(routineService *service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

func (h *RoutineHandler) List(c *gin.Context) {
	routines, apiErr := h.routineService.List(c.Request.Context(), c.Param("context"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routines": routines})
}

func (h *RoutineHandler) Create(c *gin.Context) {
	var req createRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	routine, apiErr := h.routineService.Create(c.Request.Context(), c.Param("context"), req.Name, req.Items)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"routine": routine})
}

func (h *RoutineHandler) Update(c *gin.Context) {
	var routine model.Routine
	if err := c.ShouldBindJSON(&routine); err != nil {
		writeInvalidJSON(c)
		return
	}
	routine.ID = c.Param("id")

	updated, apiErr := h.routineService.Update(c.Request.Context(), c.Param("context"), routine)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routine": updated})
}
