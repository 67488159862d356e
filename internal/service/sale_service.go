package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sistemapdv/sistema-pdv/internal/domain/account"
	"github.com/sistemapdv/sistema-pdv/internal/domain/product"
	"github.com/sistemapdv/sistema-pdv/internal/domain/sale"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
	"github.com/sistemapdv/sistema-pdv/pkg/printer"
)

// CreateSaleInput agrupa os dados do carrinho para fechar uma venda
type CreateSaleInput struct {
	CustomerID    *string
	UserID        string
	Discount      float64
	PaymentMethod string
	Notes         string
	Items         []SaleItemInput
}

// SaleItemInput é uma linha do carrinho
type SaleItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// CreateSaleResult identifica a venda criada
type CreateSaleResult struct {
	ID     string `json:"id"`
	Number string `json:"numero_venda"`
}

// SaleService fecha vendas: número sequencial diário, cabeçalho e itens com
// custo capturado no momento, baixa de estoque e lançamento no caixa — tudo
// em uma única transação.
type SaleService struct {
	tx               TxManager
	sales            sale.Repository
	products         product.Repository
	cashbook         *cashbook
	stock            *StockService
	printer          ReceiptPrinter
	notifier         Notifier
	defaultAccountID string
	logger           logger.Logger
}

// NewSaleService cria um novo SaleService. defaultAccountID é a conta caixa
// que recebe o valor das vendas; vem de configuração, nunca de literal fixo.
func NewSaleService(
	tx TxManager,
	sales sale.Repository,
	products product.Repository,
	accounts account.Repository,
	stock *StockService,
	receiptPrinter ReceiptPrinter,
	notifier Notifier,
	defaultAccountID string,
	logger logger.Logger,
) *SaleService {
	return &SaleService{
		tx:               tx,
		sales:            sales,
		products:         products,
		cashbook:         &cashbook{accounts: accounts},
		stock:            stock,
		printer:          receiptPrinter,
		notifier:         notifier,
		defaultAccountID: defaultAccountID,
		logger:           logger,
	}
}

// CreateSale fecha uma venda. Ou todos os efeitos ficam visíveis — venda,
// itens, baixas de estoque e lançamento no caixa — ou nenhum deles.
// Impressão do recibo e notificação acontecem depois do commit e nunca
// desfazem a venda.
func (s *SaleService) CreateSale(ctx context.Context, input CreateSaleInput) (*CreateSaleResult, error) {
	if input.UserID == "" {
		return nil, sale.ErrEmptyUser
	}
	if len(input.Items) == 0 {
		return nil, sale.ErrEmptyItems
	}

	var result *CreateSaleResult

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		number, err := s.sales.NextNumber(ctx, time.Now())
		if err != nil {
			return fmt.Errorf("erro ao gerar número da venda: %w", err)
		}

		newSale, err := sale.NewSale(input.CustomerID, input.UserID, input.Discount, input.PaymentMethod, input.Notes)
		if err != nil {
			return err
		}
		newSale.Number = number

		for _, item := range input.Items {
			// Custo capturado do produto no momento da venda; produto
			// inexistente ou sem custo entra como zero
			cost, err := s.products.GetCost(ctx, item.ProductID)
			if err != nil {
				return fmt.Errorf("erro ao consultar custo do produto: %w", err)
			}
			newSale.AddItem(item.ProductID, item.Quantity, item.UnitPrice, cost)
		}

		if err := s.sales.Create(ctx, newSale); err != nil {
			return fmt.Errorf("erro ao gravar venda: %w", err)
		}

		for _, item := range input.Items {
			if err := s.stock.apply(ctx, item.ProductID, -item.Quantity, "Venda", input.UserID); err != nil {
				return err
			}
		}

		movement := account.NewMovement(
			s.defaultAccountID,
			account.MovementIn,
			account.CategorySale,
			newSale.Total,
			fmt.Sprintf("Venda %s", number),
			"",
			input.UserID,
		)
		if err := s.cashbook.post(ctx, movement); err != nil {
			return err
		}

		result = &CreateSaleResult{ID: newSale.ID, Number: number}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(TopicProducts)
	s.notifier.Publish(TopicSales)
	s.printReceipt(ctx, result.ID)

	return result, nil
}

// GetSale busca uma venda com itens e nomes resolvidos
func (s *SaleService) GetSale(ctx context.Context, id string) (*sale.Sale, error) {
	return s.sales.FindByID(ctx, id)
}

// ListSales lista vendas pelos filtros informados
func (s *SaleService) ListSales(ctx context.Context, f sale.Filter) ([]*sale.Sale, error) {
	return s.sales.List(ctx, f)
}

// PrintReceipt reimprime o recibo de uma venda existente
func (s *SaleService) PrintReceipt(ctx context.Context, saleID string) (*printer.Result, error) {
	found, err := s.sales.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return s.printer.PrintReceipt(receiptFromSale(found))
}

// printReceipt tenta imprimir o recibo depois do commit. Falha aqui é
// registrada e reportada à parte; a venda permanece válida.
func (s *SaleService) printReceipt(ctx context.Context, saleID string) {
	if s.printer == nil {
		return
	}
	if _, err := s.PrintReceipt(ctx, saleID); err != nil {
		s.logger.Warn("erro ao imprimir recibo da venda", "venda", saleID, "erro", err)
	}
}

// receiptFromSale monta o retrato plano da venda para o colaborador de
// impressão; o motor não formata texto
func receiptFromSale(s *sale.Sale) printer.Receipt {
	r := printer.Receipt{
		SaleNumber:    s.Number,
		CustomerName:  s.CustomerName,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
	}
	for _, item := range s.Items {
		r.Items = append(r.Items, printer.ReceiptItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return r
}
