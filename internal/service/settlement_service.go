package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/internal/domain/payable"
	"github.com/sistemapdv/sistema-pdv/internal/domain/receivable"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// SettlementInput descreve a liquidação parcial ou total de um título
type SettlementInput struct {
	Amount        float64
	PaymentMethod string
	BankAccountID string
	UserID        string
}

// SettlementService liquida contas a pagar e a receber: atualiza o título e
// lança a contrapartida no caixa na mesma transação.
type SettlementService struct {
	tx               TxManager
	payables         payable.Repository
	receivables      receivable.Repository
	cashbook         *cashbook
	notifier         Notifier
	defaultAccountID string
	logger           logger.Logger
}

// NewSettlementService cria um novo SettlementService
func NewSettlementService(
	tx TxManager,
	payables payable.Repository,
	receivables receivable.Repository,
	accounts account.Repository,
	notifier Notifier,
	defaultAccountID string,
	logger logger.Logger,
) *SettlementService {
	return &SettlementService{
		tx:               tx,
		payables:         payables,
		receivables:      receivables,
		cashbook:         &cashbook{accounts: accounts},
		notifier:         notifier,
		defaultAccountID: defaultAccountID,
		logger:           logger,
	}
}

// PayPayable registra um pagamento contra uma conta a pagar. O título é
// atualizado e a saída de caixa registrada juntos; se a conta já está paga a
// operação falha sem efeito algum.
func (s *SettlementService) PayPayable(ctx context.Context, id string, input SettlementInput) (*payable.Payable, error) {
	if input.Amount <= 0 {
		return nil, ErrValorInvalido
	}
	accountID := input.BankAccountID
	if accountID == "" {
		accountID = s.defaultAccountID
	}

	var settled *payable.Payable

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.payables.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := p.ApplyPayment(input.Amount, input.PaymentMethod, accountID, time.Now()); err != nil {
			return err
		}

		if err := s.payables.UpdateSettlement(ctx, p); err != nil {
			return fmt.Errorf("erro ao atualizar conta a pagar: %w", err)
		}

		m := account.NewMovement(
			accountID,
			account.MovementOut,
			account.CategoryPayment,
			input.Amount,
			fmt.Sprintf("Pagamento: %s", p.Description),
			p.Document,
			input.UserID,
		)
		if err := s.cashbook.post(ctx, m); err != nil {
			return err
		}

		settled = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(TopicFinancial)
	return settled, nil
}

// ReceiveReceivable registra um recebimento contra uma conta a receber,
// espelho do pagamento: título e entrada de caixa na mesma transação.
func (s *SettlementService) ReceiveReceivable(ctx context.Context, id string, input SettlementInput) (*receivable.Receivable, error) {
	if input.Amount <= 0 {
		return nil, ErrValorInvalido
	}
	accountID := input.BankAccountID
	if accountID == "" {
		accountID = s.defaultAccountID
	}

	var settled *receivable.Receivable

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		r, err := s.receivables.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := r.ApplyReceipt(input.Amount, input.PaymentMethod, accountID, time.Now()); err != nil {
			return err
		}

		if err := s.receivables.UpdateSettlement(ctx, r); err != nil {
			return fmt.Errorf("erro ao atualizar conta a receber: %w", err)
		}

		m := account.NewMovement(
			accountID,
			account.MovementIn,
			account.CategoryReceipt,
			input.Amount,
			fmt.Sprintf("Recebimento: %s", r.Description),
			r.Document,
			input.UserID,
		)
		if err := s.cashbook.post(ctx, m); err != nil {
			return err
		}

		settled = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(TopicFinancial)
	return settled, nil
}
