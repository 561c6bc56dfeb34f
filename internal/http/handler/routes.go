package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"quizapi/internal/model"
	"quizapi/internal/service"
)

// Pinger reports document store connectivity. *mongo.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, questionSvc service.QuestionService, exportSvc service.ExportService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/question/export", ExportQuestions(exportSvc))
	app.Post("/question", CreateQuestion(questionSvc))
	app.Get("/question", ListQuestions(questionSvc))
	app.Get("/question/:id", GetQuestion(questionSvc))
	app.Put("/question/:id", UpdateQuestion(questionSvc))
	app.Delete("/question/:id", DeleteQuestion(questionSvc))
}

// HealthCheck pings the document store.
//
// @Summary Readiness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx, readpref.Primary()); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// CreateQuestion stores a new question.
//
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body model.Question true "Question"
// @Success 200 {object} model.Question
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /question [post]
func CreateQuestion(svc service.QuestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Question
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", msgInvalidBody)
		}

		q, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return c.JSON(q)
	}
}

// GetQuestion returns a question by ID.
//
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} model.Question
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /question/{id} [get]
func GetQuestion(svc service.QuestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", msgInvalidID)
		}

		q, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return mapServiceError(c, err, msgUpdateNotFound)
		}
		return c.JSON(q)
	}
}

// UpdateQuestion replaces the mutable fields of a question and returns the stored document.
//
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body model.Question true "Question"
// @Success 200 {object} model.Question
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /question/{id} [put]
func UpdateQuestion(svc service.QuestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", msgInvalidID)
		}

		var in model.Question
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", msgInvalidBody)
		}

		q, err := svc.Update(c.UserContext(), id, &in)
		if err != nil {
			return mapServiceError(c, err, msgUpdateNotFound)
		}
		return c.JSON(q)
	}
}

// DeleteQuestion removes a question by ID.
//
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {string} string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /question/{id} [delete]
func DeleteQuestion(svc service.QuestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", msgInvalidID)
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return mapServiceError(c, err, msgDeleteNotFound)
		}
		return c.JSON(msgDeleteConfirmed)
	}
}

// ListQuestions returns every question.
//
// @Summary List questions
// @Tags questions
// @Produce json
// @Success 200 {array} model.Question
// @Failure 500 {object} errorPayload
// @Router /question [get]
func ListQuestions(svc service.QuestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return c.JSON(items)
	}
}

// ExportQuestions uploads a snapshot of the collection to object storage.
//
// @Summary Export questions
// @Tags questions
// @Produce json
// @Success 200 {object} service.ExportResult
// @Failure 503 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /question/export [post]
func ExportQuestions(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrExportDisabled) {
				return writeError(c, fiber.StatusServiceUnavailable, "EXPORT_DISABLED", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return c.JSON(res)
	}
}

func pathID(c *fiber.Ctx) (string, bool) {
	id := strings.TrimSpace(c.Params("id"))
	return id, id != ""
}
