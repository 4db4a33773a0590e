package delivery

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

const deliveryColumns = `id, client_id, recipient_name, recipient_street, recipient_number,
	recipient_neighborhood, recipient_complement, tax, status, ordered_at, finished_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	deliveryModel := FromDomain(&deliveryEntity)

	query := `
		INSERT INTO deliveries (client_id, recipient_name, recipient_street, recipient_number,
			recipient_neighborhood, recipient_complement, tax, status, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + deliveryColumns

	created, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		deliveryModel.ClientID,
		deliveryModel.RecipientName,
		deliveryModel.RecipientStreet,
		deliveryModel.RecipientNumber,
		deliveryModel.RecipientNeighborhood,
		deliveryModel.RecipientComplement,
		deliveryModel.Tax,
		deliveryModel.Status,
		deliveryModel.OrderedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, errs.NewNotFoundError(errs.KindClient, deliveryModel.ClientID)
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(created, nil), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate блокирует строку до конца транзакции.
// Вне транзакции блокировка снимается сразу.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1 ` + lock

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(errs.KindDelivery, id)
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	occurrences, err := r.selectOccurrences(ctx, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(deliveryModel, occurrences[id]), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Delivery, error) {
	query := `
	SELECT ` + deliveryColumns + `
	FROM deliveries
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		deliveryModel, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
		}
		deliveryModels = append(deliveryModels, *deliveryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}

	if len(deliveryModels) == 0 {
		return []entities.Delivery{}, nil
	}

	ids := make([]int64, len(deliveryModels))
	for i := range deliveryModels {
		ids[i] = deliveryModels[i].ID
	}

	occurrences, err := r.selectOccurrences(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}

	result := make([]entities.Delivery, len(deliveryModels))
	for i := range deliveryModels {
		result[i] = *ToDomain(&deliveryModels[i], occurrences[deliveryModels[i].ID])
	}
	return result, nil
}

// Update заменяет данные получателя, налог и клиента. Статус и журнал не меняются.
func (r *Repository) Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyModel := FromDomainModify(&deliveryModifyEntity)
	if deliveryModifyModel.ID == nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: missing id")
	}

	query, args, err := qb.
		Update("deliveries").
		Set("client_id", deliveryModifyModel.ClientID).
		Set("recipient_name", deliveryModifyModel.RecipientName).
		Set("recipient_street", deliveryModifyModel.RecipientStreet).
		Set("recipient_number", deliveryModifyModel.RecipientNumber).
		Set("recipient_neighborhood", deliveryModifyModel.RecipientNeighborhood).
		Set("recipient_complement", deliveryModifyModel.RecipientComplement).
		Set("tax", deliveryModifyModel.Tax).
		Where(sq.Eq{"id": *deliveryModifyModel.ID}).
		Suffix("RETURNING " + deliveryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(errs.KindDelivery, *deliveryModifyModel.ID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) && deliveryModifyModel.ClientID != nil {
			return nil, errs.NewNotFoundError(errs.KindClient, *deliveryModifyModel.ClientID)
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	occurrences, err := r.selectOccurrences(ctx, []int64{deliveryModel.ID})
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(deliveryModel, occurrences[deliveryModel.ID]), nil
}

// Save перезаписывает строку доставки целиком и добавляет новые записи журнала.
// Сохраненным записям проставляются идентификаторы.
func (r *Repository) Save(ctx context.Context, deliveryEntity *entities.Delivery) error {
	deliveryModel := FromDomain(deliveryEntity)

	query, args, err := qb.
		Update("deliveries").
		SetMap(map[string]interface{}{
			"client_id":              deliveryModel.ClientID,
			"recipient_name":         deliveryModel.RecipientName,
			"recipient_street":       deliveryModel.RecipientStreet,
			"recipient_number":       deliveryModel.RecipientNumber,
			"recipient_neighborhood": deliveryModel.RecipientNeighborhood,
			"recipient_complement":   deliveryModel.RecipientComplement,
			"tax":                    deliveryModel.Tax,
			"status":                 deliveryModel.Status,
			"finished_at":            deliveryModel.FinishedAt,
		}).
		Where(sq.Eq{"id": deliveryModel.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected delivery repository save error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository save error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errs.NewNotFoundError(errs.KindDelivery, deliveryModel.ID)
	}

	for i := range deliveryEntity.Occurrences {
		occurrence := &deliveryEntity.Occurrences[i]
		if !occurrence.IsNew() {
			continue
		}

		err := r.querier.QueryRow(ctx,
			`INSERT INTO occurrences (delivery_id, description, registered_at)
			VALUES ($1, $2, $3)
			RETURNING id`,
			deliveryModel.ID,
			occurrence.Description,
			occurrence.RegisteredAt,
		).Scan(&occurrence.ID)
		if err != nil {
			return fmt.Errorf("unexpected delivery repository save occurrence error: %w", err)
		}
		occurrence.DeliveryID = deliveryModel.ID
	}

	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error) {
	rows, err := r.querier.Query(ctx, `SELECT status, COUNT(*) FROM deliveries GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository countbystatus error: %w", err)
	}
	defer rows.Close()

	result := map[entities.DeliveryStatusType]int64{
		entities.DeliveryPending:   0,
		entities.DeliveryFinalized: 0,
		entities.DeliveryCancelled: 0,
	}
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository countbystatus error: %w", err)
		}
		result[entities.DeliveryStatusType(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository countbystatus error: %w", err)
	}
	return result, nil
}

func (r *Repository) selectOccurrences(ctx context.Context, deliveryIDs []int64) (map[int64][]OccurrenceDB, error) {
	query, args, err := qb.
		Select("id", "delivery_id", "description", "registered_at").
		From("occurrences").
		Where(sq.Eq{"delivery_id": deliveryIDs}).
		OrderBy("delivery_id", "registered_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]OccurrenceDB, len(deliveryIDs))
	for rows.Next() {
		var o OccurrenceDB
		if err := rows.Scan(&o.ID, &o.DeliveryID, &o.Description, &o.RegisteredAt); err != nil {
			return nil, err
		}
		result[o.DeliveryID] = append(result[o.DeliveryID], o)
	}

	return result, rows.Err()
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryModel DeliveryDB
	err := row.Scan(
		&deliveryModel.ID,
		&deliveryModel.ClientID,
		&deliveryModel.RecipientName,
		&deliveryModel.RecipientStreet,
		&deliveryModel.RecipientNumber,
		&deliveryModel.RecipientNeighborhood,
		&deliveryModel.RecipientComplement,
		&deliveryModel.Tax,
		&deliveryModel.Status,
		&deliveryModel.OrderedAt,
		&deliveryModel.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryModel, nil
}
