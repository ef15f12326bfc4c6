package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ParseUUIDParam reads a :param path segment as a UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" must be a valid uuid")
	}
	return id, nil
}

// ParseUUIDQuery reads an optional ?key= UUID filter.
func ParseUUIDQuery(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" must be a valid uuid")
	}
	return &id, nil
}

// ParseDateRange reads optional ?start_date= and ?end_date= (YYYY-MM-DD)
// filters; end_date is inclusive, so callers compare against end+1d.
func ParseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if raw := strings.TrimSpace(c.Query("start_date")); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		start = &t
	}
	if raw := strings.TrimSpace(c.Query("end_date")); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		t = t.Add(24 * time.Hour)
		end = &t
	}
	return start, end, nil
}
