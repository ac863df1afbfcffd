package mockapi

import (
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// simpleCollections get the generic CRUD surface and nothing else.
var simpleCollections = []string{
	"persons",
	"accounts",
	"members",
	"teamMembers",
	"meetings",
	"transactions",
	"plans",
	"workspaces",
}

type RouterDeps struct {
	Store       *Store
	Environment string
	Version     string
	Log         *logging.Logger
}

// BuildRouter assembles the mock backend. Every collection is served
// both unprefixed and under /api/v1 so either client configuration
// resolves.
func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if dep.Log == nil {
		dep.Log = logging.Nop()
	}
	if dep.Store == nil {
		dep.Store = NewStore()
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"version":   dep.Version,
			"timestamp": time.Now().UTC(),
		})
	})

	h := NewHandler(dep.Store, dep.Log)
	registerRoutes(r.Group(""), h)
	registerRoutes(r.Group("/api/v1"), h)
	return r
}

func registerRoutes(rg *gin.RouterGroup, h *Handler) {
	for _, collection := range simpleCollections {
		registerCRUD(rg, h, collection)
	}

	registerCRUD(rg, h, "organizations")
	rg.GET("/organizations/:id/members", h.organizationMembers)

	registerCRUD(rg, h, "invitations")
	rg.POST("/invitations/:id/accept", h.acceptInvitation)
	rg.POST("/invitations/:id/reject", h.rejectInvitation)

	rg.GET("/persons/:id/invitations", h.personInvitations)
	rg.GET("/persons/:id/organizations", h.personOrganizations)

	registerCRUD(rg, h, "projects")
	rg.GET("/projects/:id/team", h.projectTeam)
	rg.POST("/projects/:id/team", h.addProjectTeamMember)
	rg.DELETE("/projects/:id/team/:memberId", h.removeProjectTeamMember)
	rg.PATCH("/projects/:id/status", h.patch("projects"))
	rg.GET("/projects/:id/total-task-budget", h.totalTaskBudget)

	rg.GET("/change-process/by-project-id/:id", h.changeProcessesByProject)
	rg.POST("/change-process/by-project-id/:id", h.createChangeProcess)
	rg.PATCH("/change-process/:id", h.patch("changeProcesses"))

	registerCRUD(rg, h, "milestones")
	rg.PATCH("/milestones/:id/name", h.patch("milestones"))
	rg.PATCH("/milestones/:id/date", h.patch("milestones"))

	registerCRUD(rg, h, "tasks")
	rg.PATCH("/tasks/:id/status", h.patch("tasks"))
	rg.PATCH("/tasks/:id/responsible", h.patch("tasks"))

	registerCRUD(rg, h, "invoices")
	rg.POST("/invoices/:id/markAsPaid", h.markInvoicePaid)

	registerCRUD(rg, h, "payments")
	rg.POST("/payments/:id/confirm", h.confirmPayment)
	rg.POST("/payments/:id/cancel", h.cancelPayment)

	registerCRUD(rg, h, "subscriptions")
	rg.POST("/subscriptions/:id/cancel", h.cancelSubscription)

	registerCRUD(rg, h, "agreements")
	rg.POST("/agreements/:id/deactivate", h.deactivateAgreement)

	rg.PATCH("/workspaces/:id/limits", h.patch("workspaces"))
}

func registerCRUD(rg *gin.RouterGroup, h *Handler, collection string) {
	rg.GET("/"+collection, h.list(collection))
	rg.GET("/"+collection+"/:id", h.get(collection))
	rg.POST("/"+collection, h.create(collection))
	rg.PATCH("/"+collection+"/:id", h.patch(collection))
	rg.PUT("/"+collection+"/:id", h.patch(collection))
	rg.DELETE("/"+collection+"/:id", h.delete(collection))
}
