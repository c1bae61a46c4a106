package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/exercisetracker/internal/services"
)

func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	dateRange, err := services.ParseLogDateRange(c.Query("from"), c.Query("to"), handler.now(), handler.location)
	if err != nil {
		return handler.writeServiceError(c, err, "failed to fetch logs")
	}
	limit, err := services.ParseLogLimit(c.Query("limit"))
	if err != nil {
		return handler.writeServiceError(c, err, "failed to fetch logs")
	}

	result, err := handler.logs.FetchLog(c.UserContext(), c.Params("id"), services.LogQuery{
		Range: dateRange,
		Limit: limit,
	})
	if err != nil {
		return handler.writeServiceError(c, err, "failed to fetch logs")
	}

	entries := make([]logEntryResponse, 0, len(result.Log))
	for _, entry := range result.Log {
		entries = append(entries, logEntryResponse{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        services.FormatCalendarDay(entry.Date, handler.location),
		})
	}

	return c.JSON(logResponse{
		ID:       result.UserID,
		Username: result.Username,
		Count:    result.Count,
		Log:      entries,
	})
}
