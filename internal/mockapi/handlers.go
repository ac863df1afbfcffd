package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Handler serves the fixture collections plus the intent routes the
// SDK services call.
type Handler struct {
	store *Store
	log   *logging.Logger
}

func NewHandler(store *Store, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{store: store, log: log}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id " + c.Param(name)})
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context, collection string) {
	c.JSON(http.StatusNotFound, gin.H{"message": collection + " not found"})
}

// collection returns the generic CRUD handlers for one resource.
func (h *Handler) list(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.store.List(collection, c.Request.URL.Query()))
	}
}

func (h *Handler) get(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		rec, found := h.store.Get(collection, id)
		if !found {
			notFound(c, collection)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func (h *Handler) create(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec Record
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, h.store.Insert(collection, rec))
	}
}

func (h *Handler) patch(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var patch Record
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		rec, found := h.store.Patch(collection, id, patch)
		if !found {
			notFound(c, collection)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func (h *Handler) delete(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if !h.store.Delete(collection, id) {
			notFound(c, collection)
			return
		}
		c.JSON(http.StatusOK, gin.H{})
	}
}

// setFields is the shape shared by the intent routes: load, mutate a
// fixed set of fields, return the record.
func (h *Handler) setFields(collection string, fields func(c *gin.Context) Record) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		rec, found := h.store.Patch(collection, id, fields(c))
		if !found {
			notFound(c, collection)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func (h *Handler) acceptInvitation(c *gin.Context) {
	h.setFields("invitations", func(*gin.Context) Record {
		return Record{"status": "ACCEPTED", "acceptedAt": time.Now().UTC().Format(time.RFC3339)}
	})(c)
}

func (h *Handler) rejectInvitation(c *gin.Context) {
	h.setFields("invitations", func(*gin.Context) Record {
		return Record{"status": "REJECTED", "acceptedAt": nil}
	})(c)
}

func (h *Handler) personInvitations(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List("invitations", map[string][]string{"personId": {c.Param("id")}}))
}

// personOrganizations resolves memberships first and then the
// organizations they point at.
func (h *Handler) personOrganizations(c *gin.Context) {
	memberships := h.store.List("members", map[string][]string{"personId": {c.Param("id")}})
	orgs := make([]Record, 0, len(memberships))
	for _, membership := range memberships {
		orgID, ok := membership["organizationId"]
		if !ok {
			continue
		}
		matches := h.store.List("organizations", map[string][]string{"id": {toParam(orgID)}})
		orgs = append(orgs, matches...)
	}
	c.JSON(http.StatusOK, orgs)
}

func (h *Handler) organizationMembers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List("members", map[string][]string{"organizationId": {c.Param("id")}}))
}

func (h *Handler) projectTeam(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List("teamMembers", map[string][]string{"projectId": {c.Param("id")}}))
}

func (h *Handler) addProjectTeamMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var rec Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	rec["projectId"] = id
	c.JSON(http.StatusCreated, h.store.Insert("teamMembers", rec))
}

func (h *Handler) removeProjectTeamMember(c *gin.Context) {
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	if !h.store.Delete("teamMembers", memberID) {
		notFound(c, "teamMembers")
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) changeProcessesByProject(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List("changeProcesses", map[string][]string{"projectId": {c.Param("id")}}))
}

func (h *Handler) createChangeProcess(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var rec Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	rec["projectId"] = id
	if _, set := rec["status"]; !set {
		rec["status"] = "PENDING"
	}
	if _, set := rec["createdAt"]; !set {
		rec["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusCreated, h.store.Insert("changeProcesses", rec))
}

// totalTaskBudget folds the budgets of every task under the project's
// milestones. Tasks without a budget contribute nothing.
func (h *Handler) totalTaskBudget(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	total := decimal.Zero
	currency := "PEN"
	for _, milestone := range h.store.List("milestones", map[string][]string{"projectId": {strconv.FormatInt(projectID, 10)}}) {
		milestoneID, ok := milestone["id"]
		if !ok {
			continue
		}
		for _, task := range h.store.List("tasks", map[string][]string{"milestoneId": {toParam(milestoneID)}}) {
			amount, cur, ok := moneyParts(task["budget"])
			if !ok {
				continue
			}
			total = total.Add(amount)
			if cur != "" {
				currency = cur
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"projectId": projectID,
		"totalTaskBudget": gin.H{
			"amount":   total.String(),
			"currency": currency,
		},
	})
}

// moneyParts reads a stored budget field, either the object shape or a
// bare number.
func moneyParts(v any) (decimal.Decimal, string, bool) {
	switch budget := v.(type) {
	case map[string]any:
		cur, _ := budget["currency"].(string)
		amount, _, ok := moneyParts(budget["amount"])
		return amount, cur, ok
	case string:
		amount, err := decimal.NewFromString(budget)
		return amount, "", err == nil
	case float64:
		return decimal.NewFromFloat(budget), "", true
	case int64:
		return decimal.NewFromInt(budget), "", true
	}
	return decimal.Zero, "", false
}

func (h *Handler) markInvoicePaid(c *gin.Context) {
	h.setFields("invoices", func(*gin.Context) Record {
		return Record{"status": "PAID"}
	})(c)
}

func (h *Handler) confirmPayment(c *gin.Context) {
	h.setFields("payments", func(*gin.Context) Record {
		return Record{"status": "CONFIRMED", "paidAt": time.Now().UTC().Format(time.RFC3339)}
	})(c)
}

func (h *Handler) cancelPayment(c *gin.Context) {
	h.setFields("payments", func(*gin.Context) Record {
		return Record{"status": "FAILED"}
	})(c)
}

func (h *Handler) cancelSubscription(c *gin.Context) {
	h.setFields("subscriptions", func(*gin.Context) Record {
		return Record{"status": "CANCELLED"}
	})(c)
}

func (h *Handler) deactivateAgreement(c *gin.Context) {
	h.setFields("agreements", func(*gin.Context) Record {
		return Record{"active": false}
	})(c)
}

func toParam(v any) string {
	if id, ok := RecordID(Record{"id": v}); ok {
		return strconv.FormatInt(id, 10)
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
