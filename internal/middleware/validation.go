package middleware

import (
	"strings"

	"question-paper/internal/domain"
	"question-paper/internal/dto"
	"question-paper/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	localTopic      = "validated_topic"
	localQuestionID = "validated_question_id"
	localUpdate     = "validated_update"
)

// ValidationMiddleware validates API request input.
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{validator: validation.NewValidator()}
}

// ValidateToggleTopic parses and validates a dto.ToggleTopicRequest body.
func (vm *ValidationMiddleware) ValidateToggleTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ToggleTopicRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}
		if errors := vm.validator.ValidateTopicName(req.Topic); len(errors) > 0 {
			return errors
		}
		c.Locals(localTopic, req.Topic)
		return c.Next()
	}
}

// ValidateQuestionID validates the :id path parameter.
func (vm *ValidationMiddleware) ValidateQuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.ToUpper(c.Params("id"))
		if errors := vm.validator.ValidateQuestionID(id); len(errors) > 0 {
			return errors
		}
		c.Locals(localQuestionID, id)
		return c.Next()
	}
}

// ValidateQuestionUpdate parses and validates a dto.UpdateQuestionRequest body.
func (vm *ValidationMiddleware) ValidateQuestionUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.UpdateQuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}
		if errors := vm.validator.ValidateQuestionUpdate(req.Text, req.MarksString()); len(errors) > 0 {
			return errors
		}
		c.Locals(localUpdate, req)
		return c.Next()
	}
}

// ValidatedTopic returns the topic stored by ValidateToggleTopic.
func ValidatedTopic(c *fiber.Ctx) string {
	s, _ := c.Locals(localTopic).(string)
	return s
}

// ValidatedQuestionID returns the id stored by ValidateQuestionID.
func ValidatedQuestionID(c *fiber.Ctx) string {
	s, _ := c.Locals(localQuestionID).(string)
	return s
}

// ValidatedUpdate returns the request stored by ValidateQuestionUpdate.
func ValidatedUpdate(c *fiber.Ctx) dto.UpdateQuestionRequest {
	req, _ := c.Locals(localUpdate).(dto.UpdateQuestionRequest)
	return req
}
