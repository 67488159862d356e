package check

import "context"

// Repository define a interface para operações de repositório de cheques
type Repository interface {
	// Create registra um novo cheque
	Create(ctx context.Context, c *Check) error

	// List lista cheques; status vazio lista todos
	List(ctx context.Context, status string) ([]*Check, error)

	// UpdateStatus atualiza o status de um cheque
	UpdateStatus(ctx context.Context, id, status string) error
}
