package applicantapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roster-ats/roster/pkg/kernel"
	"github.com/roster-ats/roster/tracking/applicant"
	"github.com/roster-ats/roster/tracking/applicant/applicantsrv"
)

// Handlers provides HTTP handlers for applicant operations
type Handlers struct {
	service *applicantsrv.ApplicantService
}

// NewHandlers creates a new applicant handlers instance
func NewHandlers(service *applicantsrv.ApplicantService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListApplicants retrieves all applicant records
// GET /api/applicants
func (h *Handlers) ListApplicants(c *fiber.Ctx) error {
	applicants, err := h.service.ListApplicants(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(applicants)
}

// CreateApplicant creates a new applicant record
// POST /api/applicants
func (h *Handlers) CreateApplicant(c *fiber.Ctx) error {
	var req applicant.CreateApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return applicant.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newApplicant, err := h.service.CreateApplicant(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"applicant": newApplicant,
	})
}

// UpdateApplicant partially updates an existing applicant record
// PUT /api/applicants/:id
func (h *Handlers) UpdateApplicant(c *fiber.Ctx) error {
	id, err := parseApplicantID(c)
	if err != nil {
		return err
	}

	var req applicant.UpdateApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return applicant.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateApplicant(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"applicant": updated,
	})
}

// DeleteApplicant removes an applicant record and its resume file
// DELETE /api/applicants/:id
func (h *Handlers) DeleteApplicant(c *fiber.Ctx) error {
	id, err := parseApplicantID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteApplicant(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// AddComment appends a comment to an applicant's thread
// POST /api/applicants/:id/comments
func (h *Handlers) AddComment(c *fiber.Ctx) error {
	id, err := parseApplicantID(c)
	if err != nil {
		return err
	}

	var req applicant.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return applicant.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	comment, err := h.service.AddComment(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"comment": comment,
	})
}

// ClearAll removes every applicant record and every referenced resume file
// DELETE /api/clear-all
func (h *Handlers) ClearAll(c *fiber.Ctx) error {
	if err := h.service.ClearAll(c.Context()); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// parseApplicantID extracts the numeric record id from the URL. A
// non-numeric id can never match a record, so it maps to not-found.
func parseApplicantID(c *fiber.Ctx) (kernel.ApplicantID, error) {
	raw := c.Params("id")
	id, err := kernel.ParseApplicantID(raw)
	if err != nil {
		return 0, applicant.ErrApplicantNotFound().WithDetail("id", raw)
	}
	return id, nil
}

// RegisterRoutes registers all applicant routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api")

	api.Get("/applicants", handlers.ListApplicants)
	api.Post("/applicants", handlers.CreateApplicant)
	api.Put("/applicants/:id", handlers.UpdateApplicant)
	api.Delete("/applicants/:id", handlers.DeleteApplicant)
	api.Post("/applicants/:id/comments", handlers.AddComment)
	api.Delete("/clear-all", handlers.ClearAll)
}
