package settings

import "context"

// Repository define a interface para o repositório chave/valor de configurações
type Repository interface {
	// List lista todas as configurações
	List(ctx context.Context) ([]*Setting, error)

	// Get busca uma configuração pela chave
	Get(ctx context.Context, key string) (*Setting, error)

	// Save insere ou substitui uma configuração
	Save(ctx context.Context, s *Setting) error

	// Reset remove todas as configurações e regrava os padrões
	Reset(ctx context.Context) error
}
