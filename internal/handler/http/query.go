package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

func errInvalidQueryParam(name string) error {
	return fmt.Errorf("query parameter %q must be a number", name)
}

// yearMonthFromQuery reads year and month query parameters, defaulting to
// the current month when both are absent.
func yearMonthFromQuery(r *http.Request) (int, int, error) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" && monthStr == "" {
		now := time.Now()
		return now.Year(), int(now.Month()), nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, errInvalidQueryParam("year")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, errInvalidQueryParam("month")
	}
	return year, month, nil
}
