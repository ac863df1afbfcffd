package billing

import (
	"context"
	"net/url"
	"strconv"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/billing/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
)

// Service exposes the invoice resource operations.
type Service struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewService(client *rest.Client, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		svc: rest.NewService(client, "/invoices", rest.Definition{
			"getAll":     {Verb: rest.GET},
			"getById":    {Verb: rest.GET, Path: ":id"},
			"create":     {Verb: rest.POST},
			"update":     {Verb: rest.PATCH, Path: ":id"},
			"delete":     {Verb: rest.DELETE, Path: ":id"},
			"markAsPaid": {Verb: rest.POST, Path: ":id/markAsPaid"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Invoice, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvoices(raw), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	raw, err := s.svc.Call(ctx, "getById", id, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvoice(raw)
}

func (s *Service) GetByPayerID(ctx context.Context, payerID int64) ([]*domain.Invoice, error) {
	query := url.Values{"payer": {strconv.FormatInt(payerID, 10)}}
	raw, err := s.svc.Call(ctx, "getAll", nil, query)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvoices(raw), nil
}

func (s *Service) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	raw, err := s.svc.Call(ctx, "create", invoice, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvoice(raw)
}

func (s *Service) Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	raw, err := s.svc.Call(ctx, "update", invoice, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvoice(raw)
}

func (s *Service) MarkAsPaid(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	raw, err := s.svc.Call(ctx, "markAsPaid", map[string]any{"id": invoiceID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToInvoice(raw)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.svc.Call(ctx, "delete", id, nil)
	return err
}
