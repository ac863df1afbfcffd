package payments

import (
	"context"
	"net/url"
	"strconv"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/payments/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/rest"
)

func intQuery(field string, value int64) url.Values {
	return url.Values{field: {strconv.FormatInt(value, 10)}}
}

// Service exposes the payment resource operations.
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
		svc: rest.NewService(client, "/payments", rest.Definition{
			"getAll":  {Verb: rest.GET},
			"getById": {Verb: rest.GET, Path: ":id"},
			"create":  {Verb: rest.POST},
			"confirm": {Verb: rest.POST, Path: ":id/confirm"},
			"cancel":  {Verb: rest.POST, Path: ":id/cancel"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *Service) GetByInvoiceID(ctx context.Context, invoiceID int64) ([]*domain.Payment, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("invoiceId", invoiceID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToPayments(raw), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	raw, err := s.svc.Call(ctx, "getById", id, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToPayment(raw)
}

func (s *Service) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	raw, err := s.svc.Call(ctx, "create", payment, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToPayment(raw)
}

func (s *Service) Confirm(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	raw, err := s.svc.Call(ctx, "confirm", map[string]any{"id": paymentID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToPayment(raw)
}

func (s *Service) Cancel(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	raw, err := s.svc.Call(ctx, "cancel", map[string]any{"id": paymentID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToPayment(raw)
}

// TransactionService exposes the gateway-attempt resource operations.
type TransactionService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewTransactionService(client *rest.Client, log *logging.Logger) *TransactionService {
	if log == nil {
		log = logging.Nop()
	}
	return &TransactionService{
		svc: rest.NewService(client, "/transactions", rest.Definition{
			"getAll":  {Verb: rest.GET},
			"getById": {Verb: rest.GET, Path: ":id"},
			"create":  {Verb: rest.POST},
			"update":  {Verb: rest.PATCH, Path: ":id"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *TransactionService) GetByPaymentID(ctx context.Context, paymentID int64) ([]*domain.Transaction, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("paymentId", paymentID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToTransactions(raw), nil
}

func (s *TransactionService) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	raw, err := s.svc.Call(ctx, "create", tx, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToTransaction(raw)
}

func (s *TransactionService) Update(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	raw, err := s.svc.Call(ctx, "update", tx, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToTransaction(raw)
}

// AgreementService exposes the recurring-payment agreement operations.
type AgreementService struct {
	svc *rest.Service
	asm *Assembler
	log *logging.Logger
}

func NewAgreementService(client *rest.Client, log *logging.Logger) *AgreementService {
	if log == nil {
		log = logging.Nop()
	}
	return &AgreementService{
		svc: rest.NewService(client, "/agreements", rest.Definition{
			"getAll":     {Verb: rest.GET},
			"getById":    {Verb: rest.GET, Path: ":id"},
			"create":     {Verb: rest.POST},
			"update":     {Verb: rest.PATCH, Path: ":id"},
			"deactivate": {Verb: rest.POST, Path: ":id/deactivate"},
		}),
		asm: NewAssembler(log),
		log: log,
	}
}

func (s *AgreementService) GetByPersonID(ctx context.Context, personID int64) ([]*domain.RecurringPaymentAgreement, error) {
	raw, err := s.svc.Call(ctx, "getAll", nil, intQuery("personId", personID))
	if err != nil {
		return nil, err
	}
	return s.asm.ToAgreements(raw), nil
}

func (s *AgreementService) Create(ctx context.Context, agreement *domain.RecurringPaymentAgreement) (*domain.RecurringPaymentAgreement, error) {
	raw, err := s.svc.Call(ctx, "create", agreement, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToAgreement(raw)
}

func (s *AgreementService) Update(ctx context.Context, agreement *domain.RecurringPaymentAgreement) (*domain.RecurringPaymentAgreement, error) {
	raw, err := s.svc.Call(ctx, "update", agreement, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToAgreement(raw)
}

func (s *AgreementService) Deactivate(ctx context.Context, agreementID int64) (*domain.RecurringPaymentAgreement, error) {
	raw, err := s.svc.Call(ctx, "deactivate", map[string]any{"id": agreementID}, nil)
	if err != nil {
		return nil, err
	}
	return s.asm.ToAgreement(raw)
}
