package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// CloseCashierResult resume o dia no momento do fechamento
type CloseCashierResult struct {
	FinalBalance float64 `json:"saldo_final"`
	TotalIn      float64 `json:"total_entradas"`
	TotalOut     float64 `json:"total_saidas"`
}

// CashierService cuida do ciclo diário do caixa: abertura com fundo de troco,
// sangrias e suprimentos durante o dia e fechamento com resumo.
type CashierService struct {
	tx               TxManager
	cashbook         *cashbook
	accounts         account.Repository
	notifier         Notifier
	defaultAccountID string
	logger           logger.Logger
}

// NewCashierService cria um novo CashierService
func NewCashierService(tx TxManager, accounts account.Repository, notifier Notifier, defaultAccountID string, logger logger.Logger) *CashierService {
	return &CashierService{
		tx:               tx,
		cashbook:         &cashbook{accounts: accounts},
		accounts:         accounts,
		notifier:         notifier,
		defaultAccountID: defaultAccountID,
		logger:           logger,
	}
}

// resolveAccount aplica a conta padrão quando o chamador não informa uma
func (s *CashierService) resolveAccount(accountID string) string {
	if accountID == "" {
		return s.defaultAccountID
	}
	return accountID
}

// OpenCashier registra a abertura do caixa com o fundo de troco. No máximo
// uma abertura por conta por dia.
func (s *CashierService) OpenCashier(ctx context.Context, accountID string, openingAmount float64, userID string) error {
	if userID == "" {
		return ErrUsuarioObrigatorio
	}
	accountID = s.resolveAccount(accountID)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		opened, err := s.accounts.HasOpeningOn(ctx, accountID, time.Now())
		if err != nil {
			return fmt.Errorf("erro ao verificar abertura do caixa: %w", err)
		}
		if opened {
			return ErrCaixaJaAberto
		}

		m := account.NewMovement(accountID, account.MovementIn, account.CategoryOpening, openingAmount, "Abertura do caixa", "", userID)
		return s.cashbook.post(ctx, m)
	})
	if err != nil {
		return err
	}

	s.notifier.Publish(TopicFinancial)
	return nil
}

// Withdraw registra uma sangria: retirada de dinheiro do caixa. O saldo da
// conta nunca fica negativo por sangria.
func (s *CashierService) Withdraw(ctx context.Context, accountID string, amount float64, description, userID string) error {
	if amount <= 0 {
		return ErrValorInvalido
	}
	if userID == "" {
		return ErrUsuarioObrigatorio
	}
	accountID = s.resolveAccount(accountID)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		balance, err := s.accounts.GetBalance(ctx, accountID)
		if err != nil {
			return fmt.Errorf("erro ao consultar saldo da conta: %w", err)
		}
		if balance < amount {
			return ErrSaldoInsuficiente
		}

		if description == "" {
			description = "Sangria do caixa"
		}
		m := account.NewMovement(accountID, account.MovementOut, account.CategoryWithdrawal, amount, description, "", userID)
		return s.cashbook.post(ctx, m)
	})
	if err != nil {
		return err
	}

	s.notifier.Publish(TopicFinancial)
	return nil
}

// Supply registra um suprimento: entrada avulsa de dinheiro no caixa
func (s *CashierService) Supply(ctx context.Context, accountID string, amount float64, description, userID string) error {
	if amount <= 0 {
		return ErrValorInvalido
	}
	if userID == "" {
		return ErrUsuarioObrigatorio
	}
	accountID = s.resolveAccount(accountID)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if description == "" {
			description = "Suprimento do caixa"
		}
		m := account.NewMovement(accountID, account.MovementIn, account.CategorySupply, amount, description, "", userID)
		return s.cashbook.post(ctx, m)
	})
	if err != nil {
		return err
	}

	s.notifier.Publish(TopicFinancial)
	return nil
}

// CloseCashier fecha o dia: soma entradas e saídas, registra uma movimentação
// de fechamento com valor zero carregando o saldo na descrição e devolve o
// resumo. O fechamento é informativo; não bloqueia vendas posteriores no
// mesmo dia.
func (s *CashierService) CloseCashier(ctx context.Context, accountID string, userID string) (*CloseCashierResult, error) {
	if userID == "" {
		return nil, ErrUsuarioObrigatorio
	}
	accountID = s.resolveAccount(accountID)

	var result *CloseCashierResult

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		totals, err := s.accounts.DayTotals(ctx, accountID, time.Now())
		if err != nil {
			return fmt.Errorf("erro ao totalizar o dia: %w", err)
		}

		balance, err := s.accounts.GetBalance(ctx, accountID)
		if err != nil {
			return fmt.Errorf("erro ao consultar saldo da conta: %w", err)
		}

		description := fmt.Sprintf("Fechamento do caixa - Saldo: R$ %.2f", balance)
		m := account.NewMovement(accountID, account.MovementOut, account.CategoryClosing, 0, description, "", userID)
		if err := s.cashbook.post(ctx, m); err != nil {
			return err
		}

		result = &CloseCashierResult{
			FinalBalance: balance,
			TotalIn:      totals.TotalIn,
			TotalOut:     totals.TotalOut,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(TopicFinancial)
	return result, nil
}
