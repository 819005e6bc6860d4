package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaginationMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  PaginationMeta
	}{
		{"empty", 1, 10, 0, PaginationMeta{Page: 1, Limit: 10, Total: 0, TotalPages: 1}},
		{"exact pages", 1, 10, 20, PaginationMeta{Page: 1, Limit: 10, Total: 20, TotalPages: 2, HasNext: true}},
		{"partial last page", 3, 10, 21, PaginationMeta{Page: 3, Limit: 10, Total: 21, TotalPages: 3, HasPrevious: true}},
		{"past the end", 5, 10, 21, PaginationMeta{Page: 5, Limit: 10, Total: 21, TotalPages: 3, HasPrevious: true}},
		{"zero limit", 1, 0, 7, PaginationMeta{Page: 1, Limit: 0, Total: 7, TotalPages: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreatePaginationMeta(tt.page, tt.limit, tt.total))
		})
	}
}

func TestErrorResponseStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/bad", func(c *fiber.Ctx) error { return ErrorResponse(c, fiber.StatusBadRequest, "nope") })
	app.Get("/broken", func(c *fiber.Ctx) error { return ErrorResponse(c, fiber.StatusInternalServerError, "boom") })
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return ValidationErrorResponse(c, []FieldError{{Field: "duration", Message: "must be a positive integer"}})
	})

	decode := func(path string) (int, map[string]interface{}) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return resp.StatusCode, body
	}

	code, body := decode("/bad")
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "error", body["status"])
	assert.NotContains(t, body, "data")

	code, body = decode("/broken")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "fail", body["status"])

	code, body = decode("/invalid")
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	fields, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, fields, 1)
}
