package iam

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/iam/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

type personResource struct {
	ID                 shared.ID `json:"id"`
	Name               string    `json:"name"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Profession         string    `json:"profession"`
	ProfessionalID     string    `json:"professionalId"`
	ProfessionalIDType string    `json:"professionalIdType"`
	ProfilePicture     string    `json:"profilePicture"`
}

type accountResource struct {
	ID          shared.ID `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	UserType    string    `json:"userType"`
	CreatedAt   string    `json:"createdAt"`
	LastLoginAt string    `json:"lastLoginAt"`
	PersonID    shared.ID `json:"personId"`
}

// Assembler builds iam entities from raw responses.
type Assembler struct {
	log *logging.Logger
}

func NewAssembler(log *logging.Logger) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{log: log}
}

func (a *Assembler) ToPerson(raw json.RawMessage) (*domain.Person, error) {
	var res personResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	var pid domain.ProfessionalID
	if res.ProfessionalID != "" {
		pid = domain.NewProfessionalID(res.ProfessionalID, domain.ParseProfessionalIDType(res.ProfessionalIDType))
	}
	return domain.NewPerson(domain.PersonConfig{
		ID:             res.ID,
		Name:           res.Name,
		LastName:       res.LastName,
		Email:          res.Email,
		Phone:          res.Phone,
		Profession:     res.Profession,
		ProfessionalID: pid,
		ProfilePicture: res.ProfilePicture,
	})
}

func (a *Assembler) ToPersons(raw json.RawMessage) []*domain.Person {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Person, 0, len(items))
	for _, item := range items {
		p, err := a.ToPerson(item)
		if err != nil {
			a.log.Warnw("dropping malformed person", "error", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

func (a *Assembler) ToAccount(raw json.RawMessage) (*domain.UserAccount, error) {
	var res accountResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	createdAt := shared.ParseWireTime(res.CreatedAt)
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	cfg := domain.UserAccountConfig{
		ID:          res.ID,
		Credentials: domain.Credentials{Email: res.Email, Password: res.Password},
		UserType:    domain.ParseUserType(res.UserType),
		CreatedAt:   createdAt,
		PersonID:    res.PersonID,
	}
	if t := shared.ParseWireTime(res.LastLoginAt); !t.IsZero() {
		cfg.LastLoginAt = &t
	}
	return domain.NewUserAccount(cfg)
}

func (a *Assembler) ToAccounts(raw json.RawMessage) []*domain.UserAccount {
	items := shared.SplitBatch(raw)
	out := make([]*domain.UserAccount, 0, len(items))
	for _, item := range items {
		acc, err := a.ToAccount(item)
		if err != nil {
			a.log.Warnw("dropping malformed account", "error", err)
			continue
		}
		out = append(out, acc)
	}
	return out
}
