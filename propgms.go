// Package propgms is the client SDK for the PropGMS backend. It wires
// the shared HTTP client, session store and read cache into one typed
// service per bounded context.
package propgms

import (
	"net/http"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/config"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/billing"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/changes"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/iam"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/organizations"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/payments"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/cache"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/session"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/projects"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/subscription"
	"github.com/redis/go-redis/v9"
)

// SDK is the root handle. Every field is safe for concurrent use.
type SDK struct {
	Session *session.Store

	Persons *iam.PersonService
	Auth    *iam.AuthService

	Organizations *organizations.Service
	Members       *organizations.MemberService
	Invitations   *organizations.InvitationService

	Projects   *projects.Service
	Milestones *projects.MilestoneService
	Tasks      *projects.TaskService
	Meetings   *projects.MeetingService
	Changes    *changes.Service

	Invoices     *billing.Service
	Payments     *payments.Service
	Transactions *payments.TransactionService
	Agreements   *payments.AgreementService

	Subscriptions *subscription.Service
	Plans         *subscription.PlanService
	Workspaces    *subscription.WorkspaceService
}

// Options tunes SDK construction beyond what configuration carries.
type Options struct {
	// Logger defaults to a nop logger.
	Logger *logging.Logger
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
	// Redis enables the read cache when set; nil disables caching.
	Redis *redis.Client
}

// New wires an SDK from configuration.
func New(cfg *config.Config, opts Options) *SDK {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	sessions := session.NewStore()

	clientOpts := []rest.Option{
		rest.WithLogger(log),
		rest.WithTokenSource(sessions),
	}
	if cfg.API.Prefix != "" {
		clientOpts = append(clientOpts, rest.WithPrefix(cfg.API.Prefix))
	}
	if cfg.API.RateLimit > 0 {
		clientOpts = append(clientOpts, rest.WithRateLimit(cfg.API.RateLimit, cfg.API.RateBurst))
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, rest.WithHTTPClient(opts.HTTPClient))
	} else if cfg.API.Timeout > 0 {
		clientOpts = append(clientOpts, rest.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
	}
	client := rest.NewClient(cfg.API.BaseURL, clientOpts...)

	var readCache *cache.Cache
	if opts.Redis != nil {
		ttl := cfg.Cache.TTL
		if ttl <= 0 {
			ttl = time.Minute
		}
		readCache = cache.New(opts.Redis, ttl, log)
	}

	persons := iam.NewPersonService(client, readCache, log)

	return &SDK{
		Session: sessions,

		Persons: persons,
		Auth:    iam.NewAuthService(client, persons, sessions, log),

		Organizations: organizations.NewService(client, readCache, log),
		Members:       organizations.NewMemberService(client, log),
		Invitations:   organizations.NewInvitationService(client, log),

		Projects:   projects.NewService(client, readCache, log),
		Milestones: projects.NewMilestoneService(client, log),
		Tasks:      projects.NewTaskService(client, log),
		Meetings:   projects.NewMeetingService(client, log),
		Changes:    changes.NewService(client, log),

		Invoices:     billing.NewService(client, log),
		Payments:     payments.NewService(client, log),
		Transactions: payments.NewTransactionService(client, log),
		Agreements:   payments.NewAgreementService(client, log),

		Subscriptions: subscription.NewService(client, log),
		Plans:         subscription.NewPlanService(client, log),
		Workspaces:    subscription.NewWorkspaceService(client, log),
	}
}
