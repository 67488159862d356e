package service

import (
	"context"
	"fmt"

	"github.com/sistemapdv/sistema-pdv/internal/domain/product"
	"github.com/sistemapdv/sistema-pdv/internal/domain/stock"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// StockService é o ponto único de ajuste de estoque. Toda operação que mexe
// em estoque (venda, compra, ajuste manual) passa por aqui para que o valor
// em cache no produto e o trilho de auditoria andem sempre juntos.
type StockService struct {
	tx        TxManager
	products  product.Repository
	movements stock.Repository
	notifier  Notifier
	logger    logger.Logger
}

// NewStockService cria um novo StockService
func NewStockService(tx TxManager, products product.Repository, movements stock.Repository, notifier Notifier, logger logger.Logger) *StockService {
	return &StockService{
		tx:        tx,
		products:  products,
		movements: movements,
		notifier:  notifier,
		logger:    logger,
	}
}

// AdjustStock aplica um delta assinado ao estoque do produto e grava a
// movimentação de auditoria na mesma transação. O estoque pode ficar
// negativo; não há piso em zero.
func (s *StockService) AdjustStock(ctx context.Context, productID string, delta int, reason, userID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.apply(ctx, productID, delta, reason, userID)
	})
	if err != nil {
		return err
	}

	s.notifier.Publish(TopicProducts)
	return nil
}

// apply executa o ajuste dentro da transação do chamador: lê o estoque
// atual, grava o novo valor no produto e registra a movimentação com os
// valores anterior e resultante.
func (s *StockService) apply(ctx context.Context, productID string, delta int, reason, userID string) error {
	current, err := s.products.GetStock(ctx, productID)
	if err != nil {
		return fmt.Errorf("erro ao consultar estoque do produto: %w", err)
	}

	newStock := current + delta
	if err := s.products.SetStock(ctx, productID, newStock); err != nil {
		return fmt.Errorf("erro ao atualizar estoque do produto: %w", err)
	}

	movement := stock.NewMovement(productID, delta, current, newStock, reason, userID)
	if err := s.movements.Create(ctx, movement); err != nil {
		return fmt.Errorf("erro ao registrar movimentação de estoque: %w", err)
	}

	return nil
}
