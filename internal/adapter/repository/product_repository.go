package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/credit-manager/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrProductNotFound = errors.New("produto não encontrado")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, tenant_id, name, description, price, created_at, updated_at`

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, tenant_id, name, description, price, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`,
		p.ID, p.TenantID, p.Name, p.Description, p.Price, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, tenantID, id string) (*product.Product, error) {
	var p product.Product

	err := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// FindByName implementa product.Repository.FindByName
func (r *ProductRepository) FindByName(ctx context.Context, tenantID, name string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE tenant_id = $1 AND name ILIKE $2
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`,
		tenantID, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET name = $1, description = $2, price = $3, updated_at = $4
		WHERE id = $5 AND tenant_id = $6`,
		p.Name, p.Description, p.Price, p.UpdatedAt, p.ID, p.TenantID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM products WHERE tenant_id = $1 AND id = $2",
		tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// CountByTenant implementa product.Repository.CountByTenant
func (r *ProductRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE tenant_id = $1",
		tenantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// scanProductRows processa resultados de consultas que retornam múltiplos produtos
func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		var p product.Product

		err := rows.Scan(
			&p.ID, &p.TenantID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}

		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}
