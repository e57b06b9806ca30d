package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

func vendorID(c *gin.Context) string {
	return c.GetString("vendorID")
}

// parseWindow reads the optional startDate/endDate query parameters.
// Both must be present for a window to apply; a date-only end bound is
// stretched to the end of that day.
func parseWindow(c *gin.Context) (*time.Time, *time.Time) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		return nil, nil
	}

	start, err := parseDate(startStr)
	if err != nil {
		return nil, nil
	}
	end, err := parseDate(endStr)
	if err != nil {
		return nil, nil
	}
	if len(endStr) == len("2006-01-02") {
		end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return &start, &end
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
