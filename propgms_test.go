package propgms_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	propgms "github.com/GalaxiaWonder-AppsWeb/propgms-go"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/config"
	changedomain "github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/changes/domain"
	iamdomain "github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/iam/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/mockapi"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
	projectdomain "github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/projects/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSDK spins up the mock backend over httptest and points a
// fresh SDK at it.
func newTestSDK(t *testing.T) *propgms.SDK {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := mockapi.NewStore()
	store.Seed(mockapi.SeedData())
	srv := httptest.NewServer(mockapi.BuildRouter(mockapi.RouterDeps{Store: store, Environment: "test", Version: "test"}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	return propgms.New(cfg, propgms.Options{HTTPClient: srv.Client()})
}

func TestOrganizationsEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	orgs, err := sdk.Organizations.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "20123456789", orgs[0].Ruc().Value())

	org, err := sdk.Organizations.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Constructora Andina S.A.C.", org.LegalName())

	_, err = sdk.Organizations.GetByID(ctx, 99)
	assert.True(t, rest.IsNotFound(err))
}

func TestPersonOrganizationsEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	orgs, err := sdk.Organizations.GetByPersonID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "Constructora Andina S.A.C.", orgs[0].LegalName())
}

func TestInvitationAcceptEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	pending, err := sdk.Invitations.GetByPersonID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	accepted, err := sdk.Invitations.Accept(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, accepted.AcceptedAt())
}

func TestSignInEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	account, err := sdk.Auth.SignIn(ctx, iamdomain.Credentials{
		Email:    "luis.paredes@propgms.dev",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, iamdomain.UserOrganization, account.UserType())

	user, ok := sdk.Session.Current()
	require.True(t, ok)
	assert.Equal(t, "luis.paredes@propgms.dev", user.Email)
	assert.NotEmpty(t, sdk.Session.Token())

	sdk.Auth.SignOut()
	_, ok = sdk.Session.Current()
	assert.False(t, ok)
}

func TestSignInRejectsBadPassword(t *testing.T) {
	sdk := newTestSDK(t)
	_, err := sdk.Auth.SignIn(context.Background(), iamdomain.Credentials{
		Email:    "luis.paredes@propgms.dev",
		Password: "wrong-password",
	})
	require.Error(t, err)
	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestProjectsEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	project, err := sdk.Projects.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Residencial Los Olivos", project.Name())
	assert.Equal(t, "250000", project.Budget().Amount().String())
	assert.Equal(t, "PEN", project.Budget().Currency())

	updated, err := sdk.Projects.UpdateStatus(ctx, 1, projectdomain.ProjectUnderReview)
	require.NoError(t, err)
	assert.Equal(t, projectdomain.ProjectUnderReview, updated.Status())
}

func TestChangeProcessesEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	open, err := sdk.Changes.GetByProjectID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].IsPending())

	requested, err := changedomain.NewChangeProcess(changedomain.ChangeProcessConfig{
		ProjectID:     shared.NewID(1),
		Justification: "Move the lobby entrance",
		RequestedBy:   shared.NewID(2),
	})
	require.NoError(t, err)
	created, err := sdk.Changes.Create(ctx, requested)
	require.NoError(t, err)
	assert.Equal(t, shared.NewID(1), created.ProjectID())
	assert.True(t, created.IsPending())

	require.NoError(t, created.Approve("approved with conditions", time.Now()))
	resolved, err := sdk.Changes.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, changedomain.ChangeApproved, resolved.Status())
}

func TestTotalTaskBudgetEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	total, err := sdk.Projects.GetTotalTaskBudget(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "15000", total.Amount().String())
	assert.Equal(t, "PEN", total.Currency())
}

func TestTaskStatusUpdateEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	task, err := sdk.Tasks.UpdateStatus(context.Background(), 1, projectdomain.TaskSubmitted)
	require.NoError(t, err)
	assert.Equal(t, projectdomain.TaskSubmitted, task.Status())
}

func TestPlansEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	plans, err := sdk.Plans.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.True(t, plans[0].IsFree() || plans[1].IsFree())
}

func TestSubscriptionCancelEndToEnd(t *testing.T) {
	sdk := newTestSDK(t)
	sub, err := sdk.Subscriptions.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, sub.IsActive(sub.StartDate()))
}
