package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/disciplinary-management/internal/auth"
	"github.com/frahmantamala/disciplinary-management/internal/document"
	"github.com/frahmantamala/disciplinary-management/internal/employee"
	"github.com/frahmantamala/disciplinary-management/internal/inquiry"
	"github.com/frahmantamala/disciplinary-management/internal/mailer"
	"github.com/frahmantamala/disciplinary-management/internal/misconduct"
	"github.com/frahmantamala/disciplinary-management/internal/process"
	"github.com/frahmantamala/disciplinary-management/internal/transport/middleware"
	"github.com/frahmantamala/disciplinary-management/internal/transport/swagger"
	"github.com/frahmantamala/disciplinary-management/internal/user"
)

type Handlers struct {
	Auth       *auth.Handler
	User       *user.Handler
	Process    *process.Handler
	Document   *document.Handler
	Mailer     *mailer.Handler
	Employee   *employee.Handler
	Misconduct *misconduct.Handler
	Inquiry    *inquiry.Handler
}

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	handlers Handlers,
	rbac *auth.RBACAuthorization,
	accessPolicy *auth.ProcessAccessPolicy,
	allowedOrigins string,
	pingMessage string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db, pingMessage)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// OpenAPI spec and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if handlers.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", handlers.Auth.Login)
				sr.Post("/refresh", handlers.Auth.RefreshToken)
				sr.Post("/logout", handlers.Auth.Logout)
			})
		}

		if handlers.Auth == nil {
			return
		}

		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.AuthMiddleware)

			pr.Get("/auth/me", handlers.Auth.Me)

			if handlers.Process != nil {
				pr.Route("/processes", func(er chi.Router) {
					er.Group(func(cr chi.Router) {
						cr.Use(rbac.RequireCreateProcesses())
						cr.Post("/", handlers.Process.CreateProcess)
					})

					er.Group(func(vr chi.Router) {
						vr.Use(rbac.RequireViewProcesses())
						vr.Get("/", handlers.Process.ListProcesses)

						vr.Group(func(ar chi.Router) {
							ar.Use(auth.RequireProcessAccess(accessPolicy))
							ar.Get("/{id}", handlers.Process.GetProcess)
							if handlers.Inquiry != nil {
								ar.Get("/{id}/inquiry", inquiryByProcessShim(handlers.Inquiry))
							}
						})
					})

					er.Group(func(fr chi.Router) {
						fr.Use(rbac.RequireFinalizeProcesses())
						fr.Patch("/{id}/status", handlers.Process.UpdateStatus)
						fr.Post("/{id}/finalize", handlers.Process.FinalizeProcess)
					})
				})
			}

			if handlers.Inquiry != nil {
				pr.Group(func(ir chi.Router) {
					ir.Use(rbac.RequireManageInquiries())
					ir.Post("/inquiries", handlers.Inquiry.CreateInquiry)
				})
			}

			if handlers.Document != nil {
				pr.Group(func(dr chi.Router) {
					dr.Use(rbac.RequireGenerateDocuments())
					dr.Post("/documents/generate", handlers.Document.Generate)
				})
			}

			if handlers.Mailer != nil {
				pr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequireSendReports())
					mr.Post("/send-process-report", handlers.Mailer.SendProcessReport)
					mr.Post("/send-document", handlers.Mailer.SendDocument)
				})
			}

			if handlers.Employee != nil {
				pr.Route("/employees", func(er chi.Router) {
					er.Get("/", handlers.Employee.ListEmployees)
					er.Get("/{id}", handlers.Employee.GetEmployee)

					er.Group(func(ir chi.Router) {
						ir.Use(rbac.RequireImportEmployees())
						ir.Post("/import", handlers.Employee.ImportCSV)
					})
				})
			}

			if handlers.Misconduct != nil {
				pr.Route("/misconduct-types", func(tr chi.Router) {
					tr.Get("/", handlers.Misconduct.ListTypes)

					tr.Group(func(ar chi.Router) {
						ar.Use(rbac.RequireAdmin())
						ar.Post("/", handlers.Misconduct.CreateType)
						ar.Delete("/{id}", handlers.Misconduct.DeactivateType)
					})
				})
			}

			if handlers.User != nil || handlers.Employee != nil {
				pr.Route("/admin", func(ar chi.Router) {
					if handlers.User != nil {
						ar.Group(func(ur chi.Router) {
							ur.Use(rbac.RequireManageUsers())

							ur.Get("/users", handlers.User.ListUsers)
							ur.Post("/users", handlers.User.CreateUser)
							ur.Get("/users/{id}", handlers.User.GetUser)
							ur.Patch("/users/{id}", handlers.User.UpdateUser)
							ur.Put("/users/{id}/permissions", handlers.User.SetPermission)
							ur.Delete("/users/{id}/permissions/{permission}", handlers.User.ClearPermission)
							ur.Get("/users/{id}/permissions", handlers.User.ListOverrides)
							ur.Get("/users/{id}/activities", handlers.User.ListActivities)
							ur.Get("/users/{id}/logins", handlers.User.ListLogins)
							ur.Get("/permissions", handlers.User.ListPermissions)
							ur.Get("/profile-permissions", handlers.User.ListProfilePermissions)
							ur.Post("/profile-permissions", handlers.User.AddProfilePermission)
							ur.Delete("/profile-permissions/{profile}/{permission}", handlers.User.RemoveProfilePermission)
							ur.Get("/user-permissions/{id}", handlers.User.GetUserPermissions)
							ur.Post("/user-overrides/{id}", handlers.User.SetPermission)
						})
					}

					if handlers.Employee != nil {
						ar.Group(func(ir chi.Router) {
							ir.Use(rbac.RequireImportEmployees())
							ir.Post("/import-employees", handlers.Employee.ImportCSV)
						})
					}
				})
			}
		})
	})
}

// inquiryByProcessShim rewrites the nested process route param to the name
// the inquiry handler reads.
func inquiryByProcessShim(h *inquiry.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		rctx.URLParams.Add("processID", chi.URLParam(r, "id"))
		h.GetInquiryByProcess(w, r)
	}
}
