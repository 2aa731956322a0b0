package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/config"
	"github.com/projectsdatadna/test-series-api-sub001/interfaces/http/rest/handlers"
	"github.com/projectsdatadna/test-series-api-sub001/interfaces/http/rest/middleware"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/common"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/observability"
)

// contentRoles may create and modify content; plain students only read it.
var contentRoles = []string{"admin", "instructor"}

// Handlers collects every handler the router mounts.
type Handlers struct {
	Course   *handlers.CourseHandler
	Subject  *handlers.SubjectHandler
	Chapter  *handlers.ChapterHandler
	Section  *handlers.SectionHandler
	Bundle   *handlers.BundleHandler
	Question *handlers.QuestionHandler
	Result   *handlers.ResultHandler
	Material *handlers.MaterialHandler
	Tag      *handlers.TagHandler
	Adaptive *handlers.AdaptiveContentHandler
	Assign   *handlers.AssignmentHandler
	Auth     *handlers.AuthHandler
}

// Router creates and configures the HTTP router.
type Router struct {
	cfg      *config.Config
	handlers Handlers
	metrics  *observability.Metrics
	tracer   *observability.Tracer
	logger   *zap.Logger
}

// NewRouter creates a new router instance.
func NewRouter(cfg *config.Config, h Handlers, metrics *observability.Metrics, tracer *observability.Tracer, logger *zap.Logger) *Router {
	return &Router{
		cfg:      cfg,
		handlers: h,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger, rt.metrics))
	if rt.cfg.EnableTracing && rt.tracer != nil {
		router.Use(middleware.Trace(rt.tracer))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.projectsdatadna.com"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", rt.handlers.Auth.SignUp)
			r.Post("/confirm", rt.handlers.Auth.ConfirmSignUp)
			r.Post("/login", rt.handlers.Auth.Login)
			r.Post("/refresh", rt.handlers.Auth.Refresh)
			r.Post("/forgot-password", rt.handlers.Auth.ForgotPassword)
			r.Post("/confirm-forgot-password", rt.handlers.Auth.ConfirmForgotPassword)

			// Endpoints needing an authenticated caller
			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(rt.cfg, rt.logger))
				r.Post("/logout", rt.handlers.Auth.Logout)
				r.Get("/sessions", rt.handlers.Auth.ListSessions)
				r.Delete("/sessions/{sessionID}", rt.handlers.Auth.RevokeSession)
			})
		})

		// Everything else requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.cfg, rt.logger))

			r.Route("/courses", func(r chi.Router) {
				h := rt.handlers.Course
				r.Get("/", h.ListCourses)
				r.Get("/{courseID}", h.GetCourse)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateCourse)
					r.Put("/{courseID}", h.UpdateCourse)
					r.Delete("/{courseID}", h.DeleteCourse)
				})
			})

			r.Route("/subjects", func(r chi.Router) {
				h := rt.handlers.Subject
				r.Get("/", h.ListSubjects)
				r.Get("/{subjectID}", h.GetSubject)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateSubject)
					r.Put("/{subjectID}", h.UpdateSubject)
					r.Delete("/{subjectID}", h.DeleteSubject)
				})
			})

			r.Route("/chapters", func(r chi.Router) {
				h := rt.handlers.Chapter
				r.Get("/", h.ListChapters)
				r.Get("/{chapterID}", h.GetChapter)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateChapter)
					r.Put("/{chapterID}", h.UpdateChapter)
					r.Delete("/{chapterID}", h.DeleteChapter)
				})
			})

			r.Route("/sections", func(r chi.Router) {
				h := rt.handlers.Section
				r.Get("/", h.ListSections)
				r.Get("/{sectionID}", h.GetSection)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateSection)
					r.Put("/{sectionID}", h.UpdateSection)
					r.Delete("/{sectionID}", h.DeleteSection)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				h := rt.handlers.Assign
				r.Get("/", h.ListAssignments)
				r.Get("/{assignmentID}", h.GetAssignment)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateAssignment)
					r.Put("/{assignmentID}", h.UpdateAssignment)
					r.Delete("/{assignmentID}", h.DeleteAssignment)
				})
			})

			r.Route("/bundles", func(r chi.Router) {
				h := rt.handlers.Bundle
				r.Get("/", h.ListBundles)
				r.Get("/{bundleID}", h.GetBundle)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateBundle)
					r.Put("/{bundleID}", h.UpdateBundle)
					r.Delete("/{bundleID}", h.DeleteBundle)
				})
			})

			r.Route("/questions", func(r chi.Router) {
				h := rt.handlers.Question
				r.Get("/", h.ListQuestions)
				r.Get("/{questionID}", h.GetQuestion)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateQuestion)
					r.Post("/bulk", h.BulkCreateQuestions)
					r.Put("/{questionID}", h.UpdateQuestion)
					r.Delete("/{questionID}", h.DeleteQuestion)
				})
			})

			r.Route("/results", func(r chi.Router) {
				h := rt.handlers.Result
				r.Post("/", h.SubmitResult)
				r.Get("/", h.ListResults)
				r.Get("/{resultID}", h.GetResult)
			})

			r.Route("/materials", func(r chi.Router) {
				h := rt.handlers.Material
				r.Get("/", h.ListMaterials)
				r.Get("/{materialID}", h.GetMaterial)
				r.Get("/{materialID}/download-url", h.DownloadURL)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateMaterial)
					r.Put("/{materialID}", h.UpdateMaterial)
					r.Delete("/{materialID}", h.DeleteMaterial)
					r.Post("/{materialID}/upload-url", h.UploadURL)
					r.Post("/{materialID}/ai-file", h.AttachAIFile)
					r.Get("/{materialID}/ai-file", h.GetAIFile)
					r.Delete("/{materialID}/ai-file", h.DetachAIFile)
				})
			})

			r.Route("/tags", func(r chi.Router) {
				h := rt.handlers.Tag
				r.Get("/", h.ListTags)
				r.Get("/{tagID}", h.GetTag)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateTag)
					r.Put("/{tagID}", h.UpdateTag)
					r.Delete("/{tagID}", h.DeleteTag)
				})
			})

			r.Route("/adaptive-content", func(r chi.Router) {
				h := rt.handlers.Adaptive
				r.Get("/", h.ListAdaptiveContent)
				r.Get("/{contentID}", h.GetAdaptiveContent)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(contentRoles...))
					r.Post("/", h.CreateAdaptiveContent)
					r.Put("/{contentID}", h.UpdateAdaptiveContent)
					r.Delete("/{contentID}", h.DeleteAdaptiveContent)
				})
			})
		})
	})

	return router
}

// healthCheck reports process liveness.
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, "OK", map[string]string{
		"status":      "healthy",
		"environment": rt.cfg.Environment,
	})
}

// readinessCheck reports whether the service can take traffic. Dependencies
// are all remote managed services, so readiness follows liveness.
func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, "OK", map[string]string{
		"status": "ready",
	})
}
