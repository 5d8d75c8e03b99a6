package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/discount-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

const (
	cachedProductsTable = "cached_products"
	// Limite de linhas por INSERT para ficar abaixo do máximo de parâmetros do postgres
	cachedProductsInsertChunk = 1000
)

// CachedProductRepository é o cache local com o snapshot da última busca no PDV
type CachedProductRepository interface {
	Replace(ctx context.Context, storeID string, products []domain.CachedProduct) error
	ReadActive(ctx context.Context, storeID string) ([]domain.CachedProduct, error)
}

type cachedProductRepository struct {
	conn *postgres.Connection
}

func NewCachedProductRepository(conn *postgres.Connection) CachedProductRepository {
	return &cachedProductRepository{
		conn: conn,
	}
}

// Replace apaga e reinsere o snapshot da loja na mesma transação
func (r *cachedProductRepository) Replace(ctx context.Context, storeID string, products []domain.CachedProduct) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(cachedProductsTable).
		Where(squirrel.Eq{"store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover cache da loja %s: %w", storeID, err)
		}

		for start := 0; start < len(products); start += cachedProductsInsertChunk {
			end := min(start+cachedProductsInsertChunk, len(products))

			insertSQL, insertArgs, err := r.buildInsert(storeID, products[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}

			if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
				return fmt.Errorf("erro ao inserir cache da loja %s: %w", storeID, err)
			}
		}

		return nil
	})
}

func (r *cachedProductRepository) buildInsert(storeID string, products []domain.CachedProduct) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert(cachedProductsTable).
		Columns("code", "price", "final_price", "unit_limit", "store_id", "start_at", "expire_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, p := range products {
		query = query.Values(
			p.Code,
			p.Price,
			p.FinalPrice,
			p.Limit,
			storeID,
			p.StartAt,
			p.ExpireAt,
		)
	}

	return query.ToSql()
}

func (r *cachedProductRepository) ReadActive(ctx context.Context, storeID string) ([]domain.CachedProduct, error) {
	query, args, err := squirrel.
		Select("id, code, price, final_price, unit_limit, store_id, start_at, expire_at, created_at, updated_at").
		From(cachedProductsTable).
		Where(squirrel.Eq{"store_id": storeID}).
		Where("deleted_at IS NULL").
		OrderBy("code ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]domain.CachedProduct, 0)
	for rows.Next() {
		var (
			p     domain.CachedProduct
			limit sql.NullInt64
		)

		if err := rows.Scan(
			&p.ID,
			&p.Code,
			&p.Price,
			&p.FinalPrice,
			&limit,
			&p.StoreID,
			&p.StartAt,
			&p.ExpireAt,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto em cache: %w", err)
		}

		if limit.Valid {
			l := int(limit.Int64)
			p.Limit = &l
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
