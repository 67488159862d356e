package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome não pode ser vazio")

// AccountType define o tipo da conta
type AccountType string

const (
	TypeCashDrawer AccountType = "caixa"
	TypeChecking   AccountType = "corrente"
	TypeSavings    AccountType = "poupanca"
)

// MovementType indica o sentido da movimentação de caixa
type MovementType string

const (
	MovementIn       MovementType = "entrada"
	MovementOut      MovementType = "saida"
	MovementTransfer MovementType = "transferencia"
)

// Categorias de movimentação de caixa
const (
	CategorySale       = "venda"
	CategoryPurchase   = "compra"
	CategoryExpense    = "despesa"
	CategoryRevenue    = "receita"
	CategoryOpening    = "abertura"
	CategoryClosing    = "fechamento"
	CategoryWithdrawal = "sangria"
	CategorySupply     = "suprimento"
	CategoryPayment    = "pagamento"
	CategoryReceipt    = "recebimento"
)

// Account representa uma conta bancária ou caixa. O saldo atual é um valor
// denormalizado: a dobra das movimentações registradas contra a conta.
type Account struct {
	ID             string      `json:"id"`
	Name           string      `json:"nome"`
	Type           AccountType `json:"tipo"`
	Bank           string      `json:"banco,omitempty"`
	Agency         string      `json:"agencia,omitempty"`
	Number         string      `json:"conta,omitempty"`
	OpeningBalance float64     `json:"saldo_inicial"`
	CurrentBalance float64     `json:"saldo_atual"`
	Active         bool        `json:"ativo"`
	CreatedAt      time.Time   `json:"criado_em"`
}

// NewAccount cria uma nova conta com saldo atual igual ao saldo inicial
func NewAccount(name string, accType AccountType, openingBalance float64) (*Account, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Account{
		ID:             uuid.New().String(),
		Name:           name,
		Type:           accType,
		OpeningBalance: openingBalance,
		CurrentBalance: openingBalance,
		Active:         true,
		CreatedAt:      time.Now(),
	}, nil
}

// Movement é o registro imutável de uma movimentação de caixa
type Movement struct {
	ID          string       `json:"id"`
	AccountID   string       `json:"conta_id"`
	AccountName string       `json:"conta_nome,omitempty"`
	Type        MovementType `json:"tipo"`
	Category    string       `json:"categoria"`
	Amount      float64      `json:"valor"`
	Description string       `json:"descricao"`
	Document    string       `json:"documento,omitempty"`
	UserID      string       `json:"usuario_id"`
	UserName    string       `json:"usuario_nome,omitempty"`
	OccurredAt  time.Time    `json:"data_movimentacao"`
}

// NewMovement cria uma movimentação de caixa
func NewMovement(accountID string, mType MovementType, category string, amount float64, description, document, userID string) *Movement {
	return &Movement{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Type:        mType,
		Category:    category,
		Amount:      amount,
		Description: description,
		Document:    document,
		UserID:      userID,
		OccurredAt:  time.Now(),
	}
}

// SignedAmount retorna o valor com o sinal do sentido da movimentação
func (m *Movement) SignedAmount() float64 {
	if m.Type == MovementOut {
		return -m.Amount
	}
	return m.Amount
}
