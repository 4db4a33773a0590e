package client

import (
	"context"
	"errors"
	"fmt"

	"delivery-service/internal/entities"
	"delivery-service/internal/pkg/errs"
	"delivery-service/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const clientColumns = "id, name, email, telephone, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, clientModifyEntity entities.ClientModify) (*entities.Client, error) {
	clientModifyModel := FromDomainModify(&clientModifyEntity)
	query := `INSERT INTO clients (name, email, telephone)
		VALUES ($1, $2, $3)
		RETURNING ` + clientColumns

	clientModel, err := scanClient(r.querier.QueryRow(
		ctx,
		query,
		clientModifyModel.Name,
		clientModifyModel.Email,
		clientModifyModel.Telephone,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, errs.ErrConflict
		}
		return nil, fmt.Errorf("unexpected client repository create error: %w", err)
	}

	return ToDomain(clientModel), nil
}

// Update полностью заменяет изменяемые поля клиента.
func (r *Repository) Update(ctx context.Context, clientModifyEntity entities.ClientModify) (*entities.Client, error) {
	clientModifyModel := FromDomainModify(&clientModifyEntity)
	if clientModifyModel.ID == nil {
		return nil, fmt.Errorf("unexpected client repository update error: missing id")
	}

	query, args, err := qb.
		Update("clients").
		Set("name", clientModifyModel.Name).
		Set("email", clientModifyModel.Email).
		Set("telephone", clientModifyModel.Telephone).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *clientModifyModel.ID}).
		Suffix("RETURNING " + clientColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository update error: %w", err)
	}

	clientModel, err := scanClient(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(errs.KindClient, *clientModifyModel.ID)
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, errs.ErrConflict
		}

		return nil, fmt.Errorf("unexpected client repository update error: %w", err)
	}

	return ToDomain(clientModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Client, error) {
	query := `SELECT ` + clientColumns + `
		FROM clients
		WHERE id = $1`

	clientModel, err := scanClient(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(errs.KindClient, id)
		}

		return nil, fmt.Errorf("unexpected client repository getbyid error: %w", err)
	}

	return ToDomain(clientModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Client, error) {
	query := `
	SELECT ` + clientColumns + `
	FROM clients
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
	}
	defer rows.Close()

	clientModels := make([]ClientDB, 0, 8)
	for rows.Next() {
		clientModel, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
		}
		clientModels = append(clientModels, *clientModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
	}

	return ToDomainList(clientModels), nil
}

// Delete не каскадирует: клиент с доставками не удаляется.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return errs.ErrClientHasDeliveries
		}
		return fmt.Errorf("unexpected client repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return errs.NewNotFoundError(errs.KindClient, id)
	}

	return nil
}

func scanClient(row pgx.Row) (*ClientDB, error) {
	var clientModel ClientDB
	err := row.Scan(
		&clientModel.ID,
		&clientModel.Name,
		&clientModel.Email,
		&clientModel.Telephone,
		&clientModel.CreatedAt,
		&clientModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &clientModel, nil
}
