// Package service implementa o motor financeiro e de estoque do PDV: as
// operações que movimentam dinheiro e estoque de forma atômica. Toda mutação
// de saldo ou de estoque passa por aqui, nunca pela camada de apresentação.
package service

import (
	"context"
	"errors"

	"github.com/sistemapdv/sistema-pdv/pkg/printer"
)

// Erros de regra de negócio das operações de caixa
var (
	ErrCaixaJaAberto      = errors.New("caixa já foi aberto hoje")
	ErrSaldoInsuficiente  = errors.New("saldo insuficiente para sangria")
	ErrValorInvalido      = errors.New("valor deve ser maior que zero")
	ErrUsuarioObrigatorio = errors.New("usuário é obrigatório")
)

// TxManager executa uma função dentro de uma unidade atômica de trabalho.
// Chamadas aninhadas participam da transação aberta.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier publica notificações de "dados alterados" para a camada de
// apresentação atualizar listagens em cache
type Notifier interface {
	Publish(topic string)
}

// ReceiptPrinter é o colaborador de impressão. Falhas de impressão nunca
// abortam a transação financeira que as originou.
type ReceiptPrinter interface {
	PrintReceipt(r printer.Receipt) (*printer.Result, error)
}

// Tópicos de notificação
const (
	TopicProducts  = "produtos"
	TopicSales     = "vendas"
	TopicFinancial = "financeiro"
)
