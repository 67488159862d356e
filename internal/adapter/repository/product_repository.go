package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sistemapdv/sistema-pdv/internal/domain/product"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductDuplicateKey = errors.New("produto com mesmo código de barras já existe")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db database.Querier
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db database.Querier) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, nome, descricao, codigo_barras, referencia, preco, custo,
		margem_lucro, estoque_inicial, estoque_atual, estoque_minimo, data_validade,
		categoria_id, fornecedor_id, imagem, ativo, criado_em, atualizado_em`

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	q := database.QuerierFrom(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO produtos (
			id, nome, descricao, codigo_barras, referencia, preco, custo,
			margem_lucro, estoque_inicial, estoque_atual, estoque_minimo,
			data_validade, categoria_id, fornecedor_id, imagem, ativo,
			criado_em, atualizado_em
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18
		)`,
		p.ID, p.Name, p.Description, p.Barcode, p.Reference, p.Price, p.Cost,
		p.ProfitMargin, p.InitialStock, p.CurrentStock, p.MinStock,
		p.ExpiryDate, p.CategoryID, p.SupplierID, p.Image, p.Active,
		p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE produtos SET
			nome = $2, descricao = $3, codigo_barras = $4, referencia = $5,
			preco = $6, custo = $7, margem_lucro = $8, estoque_minimo = $9,
			data_validade = $10, categoria_id = $11, fornecedor_id = $12,
			imagem = $13, ativo = $14, atualizado_em = NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Barcode, p.Reference, p.Price, p.Cost,
		p.ProfitMargin, p.MinStock, p.ExpiryDate, p.CategoryID, p.SupplierID,
		p.Image, p.Active)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete (remoção lógica)
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE produtos SET ativo = false, atualizado_em = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	q := database.QuerierFrom(ctx, r.db)

	row := q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM produtos WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(ctx context.Context, code string) (*product.Product, error) {
	q := database.QuerierFrom(ctx, r.db)

	row := q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM produtos
		WHERE (codigo_barras = $1 OR referencia = $1) AND ativo = true`, code)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto por código: %w", err)
	}

	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, f product.Filter) ([]*product.Product, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM produtos WHERE ativo = true`
	args := []any{}
	idx := 1

	if f.CategoryID != "" {
		query += fmt.Sprintf(" AND categoria_id = $%d", idx)
		args = append(args, f.CategoryID)
		idx++
	}
	if f.Search != "" {
		query += fmt.Sprintf(" AND (nome ILIKE $%d OR descricao ILIKE $%d)", idx, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	if f.Code != "" {
		query += fmt.Sprintf(" AND (codigo_barras = $%d OR referencia = $%d)", idx, idx)
		args = append(args, f.Code)
		idx++
	}
	query += " ORDER BY nome"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ListLowStock implementa product.Repository.ListLowStock
func (r *ProductRepository) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	q := database.QuerierFrom(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+productColumns+` FROM produtos
		WHERE ativo = true AND estoque_atual <= estoque_minimo
		ORDER BY estoque_atual`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// GetCost implementa product.Repository.GetCost. Produto inexistente retorna
// custo zero, sem erro.
func (r *ProductRepository) GetCost(ctx context.Context, id string) (float64, error) {
	q := database.QuerierFrom(ctx, r.db)

	var cost float64
	err := q.QueryRow(ctx, `SELECT custo FROM produtos WHERE id = $1`, id).Scan(&cost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao buscar custo do produto: %w", err)
	}

	return cost, nil
}

// GetStock implementa product.Repository.GetStock
func (r *ProductRepository) GetStock(ctx context.Context, id string) (int, error) {
	q := database.QuerierFrom(ctx, r.db)

	var stock int
	err := q.QueryRow(ctx, `SELECT estoque_atual FROM produtos WHERE id = $1`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrProductNotFound
		}
		return 0, fmt.Errorf("erro ao buscar estoque do produto: %w", err)
	}

	return stock, nil
}

// SetStock implementa product.Repository.SetStock
func (r *ProductRepository) SetStock(ctx context.Context, id string, stock int) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE produtos SET estoque_atual = $2, atualizado_em = NOW() WHERE id = $1`,
		id, stock)
	if err != nil {
		return fmt.Errorf("erro ao gravar estoque do produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Barcode, &p.Reference, &p.Price,
		&p.Cost, &p.ProfitMargin, &p.InitialStock, &p.CurrentStock,
		&p.MinStock, &p.ExpiryDate, &p.CategoryID, &p.SupplierID, &p.Image,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	return products, nil
}
