package stock

import (
	"time"

	"github.com/google/uuid"
)

// MovementType indica o sentido da movimentação de estoque
type MovementType string

const (
	MovementIn     MovementType = "entrada"
	MovementOut    MovementType = "saida"
	MovementAdjust MovementType = "ajuste"
)

// Movement é o registro imutável de uma alteração de estoque. Movimentações
// nunca são atualizadas ou removidas; são a única fonte de verdade de como o
// estoque_atual chegou ao seu valor.
type Movement struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"produto_id"`
	ProductName string       `json:"produto_nome,omitempty"`
	Type        MovementType `json:"tipo"`
	Quantity    int          `json:"quantidade"`
	PreviousQty int          `json:"quantidade_anterior"`
	CurrentQty  int          `json:"quantidade_atual"`
	Reason      string       `json:"motivo"`
	UserID      string       `json:"usuario_id"`
	CreatedAt   time.Time    `json:"criado_em"`
}

// NewMovement registra uma variação de estoque. O tipo é derivado do sinal
// de delta e a quantidade gravada é sempre absoluta.
func NewMovement(productID string, delta, previous, current int, reason, userID string) *Movement {
	mType := MovementOut
	qty := -delta
	if delta > 0 {
		mType = MovementIn
		qty = delta
	}
	return &Movement{
		ID:          uuid.New().String(),
		ProductID:   productID,
		Type:        mType,
		Quantity:    qty,
		PreviousQty: previous,
		CurrentQty:  current,
		Reason:      reason,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
}
