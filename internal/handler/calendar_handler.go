package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "meeze/backend/internal/errors"
	"meeze/backend/internal/service"
)

type CalendarHandler struct {
	calendarService *service.CalendarService
}

type placeEventRequest struct {
	DayOfWeek       int    `json:"dayOfWeek"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Type            string `json:"type"`
	LinkedTaskID    string `json:"linkedTaskId"`
	LinkedTaskDate  string `json:"linkedTaskDate"`
}

func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

func weekOffsetParam(c *gin.Context) (int, bool) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		writeError(c, apperrors.BadRequest("invalid_week", "week must be an integer offset"))
		return 0, false
	}
	return week, true
}

func (h *CalendarHandler) Week(c *gin.Context) {
	week, ok := weekOffsetParam(c)
	if !ok {
		return
	}

	events, apiErr := h.calendarService.Week(c.Request.Context(), c.Param("context"), week)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *CalendarHandler) PlaceEvent(c *gin.Context) {
	week, ok := weekOffsetParam(c)
	if !ok {
		return
	}

	var req placeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	event, apiErr := h.calendarService.PlaceEvent(c.Request.Context(), service.PlaceEventInput{
		Context:         c.Param("context"),
		WeekOffset:      week,
		DayOfWeek:       req.DayOfWeek,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		LinkedTaskID:    req.LinkedTaskID,
		LinkedTaskDate:  req.LinkedTaskDate,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	week, ok := weekOffsetParam(c)
	if !ok {
		return
	}

	if apiErr := h.calendarService.DeleteEvent(c.Request.Context(), c.Param("context"), week, c.Param("id")); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.Status(http.StatusNoContent)
}
