package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/models"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError reports err to the client. Internal errors are logged and
// their details withheld.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger logrus.FieldLogger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
		writeError(w, status, "internal server error")
		return
	}
	writeError(w, status, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", models.ErrValidation, err)
	}
	return nil
}

const dateLayout = "2006-01-02"

// parseDate accepts a calendar date or an RFC 3339 timestamp. A calendar date
// is midnight in the server's local zone. dateOnly reports whether the value
// carried no time of day.
func parseDate(s string) (t time.Time, dateOnly bool, err error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: invalid date %q", models.ErrValidation, s)
	}
	return t, false, nil
}

// parseFilter reads vehicle_id, from, to and limit query parameters.
// A calendar date in "to" includes the whole day.
func parseFilter(r *http.Request) (models.MaintenanceFilter, error) {
	q := r.URL.Query()
	filter := models.MaintenanceFilter{VehicleID: q.Get("vehicle_id")}

	if v := q.Get("from"); v != "" {
		from, _, err := parseDate(v)
		if err != nil {
			return filter, err
		}
		filter.From = from
	}
	if v := q.Get("to"); v != "" {
		to, dateOnly, err := parseDate(v)
		if err != nil {
			return filter, err
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.To = to
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, fmt.Errorf("%w: invalid limit %q", models.ErrValidation, v)
		}
		filter.Limit = limit
	}
	return filter, nil
}
