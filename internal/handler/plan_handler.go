package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "meeze/backend/internal/errors"
	"meeze/backend/internal/model"
	"meeze/backend/internal/service"
)

type PlanHandler struct {
	planService *service.PlanService
	linkService *service.LinkService
}

type addTaskRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type moveTaskRequest struct {
	Context    string `json:"context"`
	TaskID     string `json:"taskId"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	NewStart24 string `json:"newStart24"`
	NewEnd24   string `json:"newEnd24"`
}

func NewPlanHandler(planService *service.PlanService, linkService *service.LinkService) *PlanHandler {
	return &PlanHandler{planService: planService, linkService: linkService}
}

func (h *PlanHandler) Get(c *gin.Context) {
	plan, apiErr := h.planService.Get(c.Request.Context(), c.Param("context"), c.Param("date"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *PlanHandler) Save(c *gin.Context) {
	var plan model.DayPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		writeInvalidJSON(c)
		return
	}
	plan.Date = c.Param("date")

	saved, apiErr := h.planService.Save(c.Request.Context(), c.Param("context"), &plan)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": saved})
}

func (h *PlanHandler) AddTask(c *gin.Context) {
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	task, apiErr := h.planService.AddTask(c.Request.Context(), c.Param("context"), c.Param("date"), req.Text, req.Type)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (h *PlanHandler) DeleteTask(c *gin.Context) {
	apiErr := h.planService.DeleteTask(c.Request.Context(), c.Param("context"), c.Param("date"), c.Param("id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlanHandler) MoveTask(c *gin.Context) {
	var req moveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}
	if req.TaskID == "" || req.FromDate == "" || req.ToDate == "" {
		writeError(c, apperrors.BadRequest("invalid_move", "taskId, fromDate and toDate are required"))
		return
	}

	task, apiErr := h.linkService.MoveTask(c.Request.Context(), service.MoveTaskInput{
		Context:    req.Context,
		TaskID:     req.TaskID,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		NewStart24: req.NewStart24,
		NewEnd24:   req.NewEnd24,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}
