package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"film-catalog/internal/apperror"
	"film-catalog/internal/middleware"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps an application error onto the response envelope.
// Internal failures are logged with their cause and answered with the
// generic message only.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, action string) error {
	switch {
	case errors.Is(err, apperror.ErrInvalidArgument):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, apperror.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	}

	logger.WithError(apperror.Cause(err)).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error(action)

	message := "Internal server error"
	if errors.Is(err, apperror.ErrInternal) {
		message = err.Error()
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message)
}

// audit records who performed a catalog mutation.
func audit(c *fiber.Ctx, logger *logrus.Logger, action string, id uint) {
	fields := logrus.Fields{
		"action":    action,
		"id":        id,
		"requestID": c.Locals("requestid"),
	}
	if claims, ok := middleware.ClaimsFrom(c); ok {
		fields["userID"] = claims.UserID
		fields["role"] = claims.Role
	}
	logger.WithFields(fields).Info("Catalog mutation")
}

func parseID(c *fiber.Ctx, entity string) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s ID", entity)
	}
	return uint(id), nil
}

// parseIDList accepts a JSON array ("[1,2]") or a comma separated list
// ("1,2"). Blank input is an empty list.
func parseIDList(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []uint{}, nil
	}

	if strings.HasPrefix(raw, "[") {
		var ids []int64
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return nil, fmt.Errorf("must be a JSON array of ids")
		}
		out := make([]uint, 0, len(ids))
		for _, id := range ids {
			if id <= 0 || id > 1<<32-1 {
				return nil, fmt.Errorf("invalid id %d", id)
			}
			out = append(out, uint(id))
		}
		return out, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		out = append(out, uint(id))
	}
	return out, nil
}
