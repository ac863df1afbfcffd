package iam

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/iam/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/cache"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/session"
	"github.com/google/uuid"
)

const personCachePrefix = "persons:"

// PersonService exposes the person resource operations. The person
// collection is served both prefixed and unprefixed depending on the
// backend deployment; the client's prefix fallback covers the gap.
type PersonService struct {
	svc   *rest.Service
	asm   *Assembler
	cache *cache.Cache
	log   *logging.Logger
}

func NewPersonService(client *rest.Client, c *cache.Cache, log *logging.Logger) *PersonService {
	if log == nil {
		log = logging.Nop()
	}
	return &PersonService{
		svc: rest.NewService(client, "/persons", rest.Definition{
			"getAll":  {Verb: rest.GET},
			"getById": {Verb: rest.GET, Path: ":id"},
			"create":  {Verb: rest.POST},
			"update":  {Verb: rest.PATCH, Path: ":id"},
			"delete":  {Verb: rest.DELETE, Path: ":id"},
		}),
		asm:   NewAssembler(log),
		cache: c,
		log:   log,
	}
}

func (s *PersonService) GetAll(ctx context.Context) ([]*domain.Person, error) {
	raw, err := s.cache.GetOrPopulate(ctx, personCachePrefix+"all", func(ctx context.Context) ([]byte, error) {
		return s.svc.Call(ctx, "getAll", nil, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.asm.ToPersons(raw), nil
}

func (s *PersonService) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	key := fmt.Sprintf("%sid:%d", personCachePrefix, id)
	raw, err := s.cache.GetOrPopulate(ctx, key, func(ctx context.Context) ([]byte, error) {
		return s.svc.Call(ctx, "getById", id, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.asm.ToPerson(raw)
}

func (s *PersonService) GetByEmail(ctx context.Context, email string) (*domain.Person, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, url.Values{"email": {email}})
	if err != nil {
		return nil, err
	}
	persons := s.asm.ToPersons(raw)
	if len(persons) == 0 {
		return nil, &rest.APIError{Status: 404, Code: rest.CodeNotFound, Message: "person not found"}
	}
	return persons[0], nil
}

func (s *PersonService) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	raw, err := s.svc.Call(ctx, "create", person, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.asm.ToPerson(raw)
}

func (s *PersonService) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	raw, err := s.svc.Call(ctx, "update", person, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.asm.ToPerson(raw)
}

func (s *PersonService) Delete(ctx context.Context, id int64) error {
	if _, err := s.svc.Call(ctx, "delete", id, nil); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *PersonService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, personCachePrefix); err != nil {
		s.log.Warnw("cache invalidation failed", "prefix", personCachePrefix, "error", err)
	}
}

// AuthService registers accounts and opens sessions against the
// account collection.
type AuthService struct {
	accounts *rest.Service
	persons  *PersonService
	asm      *Assembler
	sessions *session.Store
	log      *logging.Logger
}

func NewAuthService(client *rest.Client, persons *PersonService, sessions *session.Store, log *logging.Logger) *AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &AuthService{
		accounts: rest.NewService(client, "/accounts", rest.Definition{
			"getAll":  {Verb: rest.GET},
			"getById": {Verb: rest.GET, Path: ":id"},
			"create":  {Verb: rest.POST},
			"update":  {Verb: rest.PATCH, Path: ":id"},
		}),
		persons:  persons,
		asm:      NewAssembler(log),
		sessions: sessions,
		log:      log,
	}
}

// SignUp creates the person record first and then the account linked
// to it.
func (s *AuthService) SignUp(ctx context.Context, person *domain.Person, credentials domain.Credentials, userType domain.UserType) (*domain.UserAccount, error) {
	created, err := s.persons.Create(ctx, person)
	if err != nil {
		return nil, err
	}
	account, err := domain.NewUserAccount(domain.UserAccountConfig{
		Credentials: credentials,
		UserType:    userType,
		PersonID:    created.ID(),
	})
	if err != nil {
		return nil, err
	}
	raw, err := s.accounts.Call(ctx, "create", account, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToAccount(raw)
}

// SignIn matches the credentials against the account collection and,
// on success, records the login and opens a session.
func (s *AuthService) SignIn(ctx context.Context, credentials domain.Credentials) (*domain.UserAccount, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}
	query := url.Values{
		"email":    {credentials.Email},
		"password": {credentials.Password},
	}
	raw, err := s.accounts.Call(ctx, "getAll", nil, query)
	if err != nil {
		return nil, err
	}
	accounts := s.asm.ToAccounts(raw)
	if len(accounts) == 0 {
		return nil, &rest.APIError{Status: 401, Code: rest.CodeUnauthorized, Message: "invalid credentials"}
	}
	account := accounts[0]
	account.RecordLogin(time.Now())
	if _, err := s.accounts.Call(ctx, "update", account, nil); err != nil {
		s.log.Warnw("recording login failed", "error", err)
	}
	if s.sessions != nil {
		s.sessions.SignIn(session.CurrentUser{
			AccountID: account.ID(),
			PersonID:  account.PersonID(),
			Email:     account.Email(),
			UserType:  string(account.UserType()),
		}, uuid.NewString())
	}
	return account, nil
}

// SignOut drops the current session.
func (s *AuthService) SignOut() {
	if s.sessions != nil {
		s.sessions.Clear()
	}
}
