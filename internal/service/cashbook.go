package service

import (
	"context"
	"fmt"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
)

// cashbook é o ponto único de lançamento no livro-caixa: grava a movimentação
// e ajusta o saldo denormalizado da conta na mesma unidade atômica de
// trabalho. Atualizar um sem o outro é a principal fonte de divergência entre
// saldo e extrato, então nenhum serviço escreve esses dois registros
// diretamente.
type cashbook struct {
	accounts account.Repository
}

// post grava a movimentação e soma o valor assinado ao saldo da conta.
// Deve ser chamado dentro de uma transação do chamador.
func (c *cashbook) post(ctx context.Context, m *account.Movement) error {
	if err := c.accounts.CreateMovement(ctx, m); err != nil {
		return fmt.Errorf("erro ao registrar movimentação de caixa: %w", err)
	}
	if err := c.accounts.AdjustBalance(ctx, m.AccountID, m.SignedAmount()); err != nil {
		return fmt.Errorf("erro ao atualizar saldo da conta: %w", err)
	}
	return nil
}
