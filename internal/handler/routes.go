package handler

import (
	"net/http"

	"question-paper/internal/middleware"
	"question-paper/internal/render"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// RegisterRoutes mounts the static assets, the HTML builder and the JSON
// API on router. Static files and the health check are served before the
// session middleware runs; literal question routes come before the :id routes.
func RegisterRoutes(router fiber.Router, sessions fiber.Handler, pages *PageHandler, api *APIHandler, validation *middleware.ValidationMiddleware) {
	router.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(render.Assets()),
		MaxAge: 3600,
	}))
	router.Get("/api/health", api.GetHealth)
	router.Use(sessions)

	router.Get("/", pages.Index)
	router.Post("/topics/toggle", pages.ToggleTopic)
	router.Post("/questions/generate", pages.GenerateQuestions)
	router.Post("/questions/blank", pages.AddBlankQuestion)
	router.Post("/questions/ai", pages.AddAIQuestion)
	router.Post("/questions/:id/delete", pages.DeleteQuestion)
	router.Post("/questions/:id", pages.UpdateQuestion)
	router.Post("/paper/finalize", pages.Finalize)
	router.Get("/paper/print", pages.Print)
	router.Post("/paper/copy", pages.Copy)
	router.Post("/paper/reset", pages.ResetToSelection)
	router.Post("/session/reset", pages.ResetSession)

	apiGroup := router.Group("/api")
	apiGroup.Get("/syllabus", api.GetSyllabus)
	apiGroup.Get("/paper", api.GetPaper)
	apiGroup.Post("/topics/toggle", validation.ValidateToggleTopic(), api.ToggleTopic)
	apiGroup.Post("/questions/generate", api.GenerateQuestions)
	apiGroup.Post("/questions/ai", api.AddAIQuestion)
	apiGroup.Post("/questions", api.AddBlankQuestion)
	apiGroup.Patch("/questions/:id", validation.ValidateQuestionID(), validation.ValidateQuestionUpdate(), api.UpdateQuestion)
	apiGroup.Delete("/questions/:id", validation.ValidateQuestionID(), api.DeleteQuestion)
	apiGroup.Post("/paper/finalize", api.Finalize)
	apiGroup.Post("/paper/reset", api.ResetToSelection)
	apiGroup.Get("/paper/transcript", api.GetTranscript)
	apiGroup.Get("/paper/print", api.GetPrintDocument)
	apiGroup.Post("/paper/copy", api.CopyPaper)
	apiGroup.Delete("/session", api.ResetSession)
}
