package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/discount-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

const (
	storesTable   = "stores s"
	storesColumns = "s.id, s.name, s.registration_code, s.tax_document, s.active, s.deleted_at, s.created_at, s.updated_at"
)

type StoreRepository interface {
	GetByID(ctx context.Context, storeID string) (*domain.Store, error)
	List(ctx context.Context, filter domain.StoreFilter) ([]*domain.Store, error)
}

type storeRepository struct {
	conn postgres.Queryer
}

func NewStoreRepository(conn postgres.Queryer) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) GetByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select(storesColumns).
		From(storesTable).
		Where(squirrel.Eq{"s.id": storeID}).
		Where("s.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store, err := r.scanStore(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar loja %s: %w", storeID, err)
	}

	return store, nil
}

// List retorna as lojas não excluídas; sem IDs explícitos retorna todas as ativas
func (r *storeRepository) List(ctx context.Context, filter domain.StoreFilter) ([]*domain.Store, error) {
	queryBuilder := squirrel.
		Select(storesColumns).
		From(storesTable).
		Where("s.deleted_at IS NULL").
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.IDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.id": filter.IDs})
	}

	if !filter.IncludeInactive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := r.scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *storeRepository) scanStore(row rowScanner) (*domain.Store, error) {
	store := &domain.Store{}

	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.RegistrationCode,
		&store.TaxDocument,
		&store.Active,
		&store.DeletedAt,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return store, nil
}
