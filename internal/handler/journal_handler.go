package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeze/backend/internal/service"
)

type JournalHandler struct {
	journalService *service.JournalService
}

type honestyEntryRequest struct {
	Date   string `json:"date"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type taskLogRequest struct {
	Date string `json:"date"`
	Text string `json:"text"`
	Type string `json:"type"`
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

func (h *JournalHandler) ListHonesty(c *gin.Context) {
	entries, apiErr := h.journalService.ListHonestyEntries(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *JournalHandler) AddHonesty(c *gin.Context) {
	var req honestyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	entry, apiErr := h.journalService.AddHonestyEntry(c.Request.Context(), req.Date, req.Text, req.Rating)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *JournalHandler) ListTaskLogs(c *gin.Context) {
	logs, apiErr := h.journalService.ListTaskLogs(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *JournalHandler) AddTaskLog(c *gin.Context) {
	var req taskLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	entry, apiErr := h.journalService.AddTaskLog(c.Request.Context(), req.Date, req.Text, req.Type)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"log": entry})
}

func (h *JournalHandler) TaskLogCounts(c *gin.Context) {
	counts, apiErr := h.journalService.CountsByDay(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}
