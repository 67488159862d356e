package dto

// OpenCashierRequest representa a abertura do caixa com o fundo de troco
type OpenCashierRequest struct {
	AccountID     string  `json:"conta_id"`
	OpeningAmount float64 `json:"valor_abertura"`
	UserID        string  `json:"usuario_id" binding:"required"`
}

// WithdrawRequest representa uma sangria ou suprimento do caixa
type WithdrawRequest struct {
	AccountID   string  `json:"conta_id"`
	Amount      float64 `json:"valor" binding:"required,gt=0"`
	Description string  `json:"descricao"`
	UserID      string  `json:"usuario_id" binding:"required"`
}

// CloseCashierRequest representa o fechamento do caixa
type CloseCashierRequest struct {
	AccountID string `json:"conta_id"`
	UserID    string `json:"usuario_id" binding:"required"`
}
