package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aadhaarseva/registry/internal/common"
	"github.com/aadhaarseva/registry/internal/server/models"
)

const dateLayout = "2006-01-02"

// saveRecordRequest is the JSON body accepted by POST /api/records.
// Empty optional fields are stored as absent, not as empty strings.
type saveRecordRequest struct {
	AadhaarNumber string `json:"aadhaar_number"`
	Name          string `json:"name"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// statusForError maps the core's error kinds to transport status codes.
// Storage-level failures are reported as 503 with an actionable message.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrNotFound):
		return fiber.StatusNotFound, "record not found"
	case errors.Is(err, common.ErrDuplicateNumber):
		return fiber.StatusConflict, "aadhaar number already exists"
	case errors.Is(err, common.ErrConnectionFailed):
		return fiber.StatusServiceUnavailable, "database connection failed, check your database configuration"
	case errors.Is(err, common.ErrAuthFailed):
		return fiber.StatusServiceUnavailable, "database authentication failed, check your database credentials"
	case errors.Is(err, common.ErrSchemaMissing):
		return fiber.StatusServiceUnavailable, "database table not found, initialize the database first"
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

func fail(c *fiber.Ctx, err error) error {
	status, msg := statusForError(err)
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// getRecords serves GET /api/records. With an aadhaar_number query parameter
// it returns that single record (404 when absent); without one it returns
// every record, newest created first.
func (s *Server) getRecords(c *fiber.Ctx) error {
	if number := c.Query("aadhaar_number"); number != "" {
		rec, err := s.search.QuickSearchByNumber(c.UserContext(), number)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": rec})
	}

	recs, err := s.records.ListAll(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	if recs == nil {
		recs = []*models.Record{}
	}
	return c.JSON(fiber.Map{"success": true, "data": recs})
}

// saveRecord serves POST /api/records: validates and upserts one record.
func (s *Server) saveRecord(c *fiber.Ctx) error {
	var req saveRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	rec := &models.Record{
		AadhaarNumber: req.AadhaarNumber,
		Name:          req.Name,
		Gender:        optional(req.Gender),
		Address:       optional(req.Address),
		PhoneNumber:   optional(req.PhoneNumber),
		Email:         optional(req.Email),
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid date_of_birth, expected YYYY-MM-DD"})
		}
		rec.DateOfBirth = &dob
	}

	saved, err := s.records.Save(c.UserContext(), rec)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"success": true, "data": saved, "message": "record saved successfully"})
}

// searchRecords serves GET /api/records/search with any subset of the
// recognized filter parameters plus page and pageSize.
func (s *Server) searchRecords(c *fiber.Ctx) error {
	criteria := models.SearchCriteria{
		AadhaarNumber:  c.Query("aadhaar_number"),
		Name:           c.Query("name"),
		Gender:         c.Query("gender"),
		AddressKeyword: c.Query("address"),
		PhoneNumber:    c.Query("phone_number"),
		Email:          c.Query("email"),
		Page:           queryInt(c, "page", 0),
		PageSize:       queryInt(c, "pageSize", 0),
	}

	if v := c.Query("dob_from"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid dob_from, expected YYYY-MM-DD"})
		}
		criteria.DOBFrom = &d
	}
	if v := c.Query("dob_to"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid dob_to, expected YYYY-MM-DD"})
		}
		criteria.DOBTo = &d
	}

	result, err := s.search.Search(c.UserContext(), criteria)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}

// suggestByName serves GET /api/records/suggest: a bounded name lookahead
// with no pagination envelope.
func (s *Server) suggestByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	recs, err := s.search.QuickSearchByName(c.UserContext(), name, queryInt(c, "limit", 0))
	if err != nil {
		return fail(c, err)
	}
	if recs == nil {
		recs = []*models.Record{}
	}
	return c.JSON(fiber.Map{"success": true, "data": recs})
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
