// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/launch-planner-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/pkg/utils"
)

const (
	launchTable      = "launch"
	ticketBatchTable = "ticket_batch"
	productTable     = "product"
	orderBumpTable   = "order_bump"
)

type LaunchRepository interface {
	CreateLaunch(ctx context.Context, launch *domain.Launch) error
	GetLaunchByID(id string) (*domain.Launch, error)
	ListLaunches(statuses []domain.LaunchStatus) ([]*domain.Launch, error)
	UpdateLaunch(launch *domain.Launch) error
	DeleteLaunch(ctx context.Context, id string) error
}

type launchRepository struct {
	conn *postgres.Connection
}

func NewLaunchRepository(conn *postgres.Connection) LaunchRepository {
	return &launchRepository{conn: conn}
}

// CreateLaunch insere o lançamento com lotes, produtos e order bumps na
// mesma transação
func (r *launchRepository) CreateLaunch(ctx context.Context, launch *domain.Launch) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert(launchTable).
			Columns(
				"id", "name", "niche", "expert", "followers",
				"target_tickets", "budget", "sale_days",
				"event_date", "event_duration", "event_platform",
				"big_idea", "narrative", "theme",
				"max_cpa", "daily_pacing", "status",
			).
			Values(
				launch.ID, launch.Name, launch.Niche, launch.Expert, launch.Followers,
				launch.TargetTickets, launch.Budget, launch.SaleDays,
				launch.EventDate, launch.EventDuration, launch.EventPlatform,
				launch.BigIdea, launch.Narrative, launch.Theme,
				launch.MaxCPA, launch.DailyPacing, launch.Status,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção do lançamento: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao inserir lançamento: %w", err)
		}

		if err := insertBatches(tx, launch.ID, launch.TicketBatches); err != nil {
			return err
		}

		if err := insertProducts(tx, launch.ID, launch.Products); err != nil {
			return err
		}

		return insertOrderBumps(tx, launch.ID, launch.OrderBumps)
	})
}

func insertBatches(tx *sql.Tx, launchID string, batches []domain.TicketBatch) error {
	if len(batches) == 0 {
		return nil
	}

	query := squirrel.
		Insert(ticketBatchTable).
		Columns("id", "launch_id", "name", "batch_order", "price", "quantity", "status").
		PlaceholderFormat(squirrel.Dollar)

	for i := range batches {
		b := &batches[i]
		if b.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id do lote: %w", err)
			}
			b.ID = id
		}
		query = query.Values(b.ID, launchID, b.Name, b.Order, b.Price, b.Quantity, b.Status)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção de lotes: %w", err)
	}

	if _, err := tx.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir lotes: %w", err)
	}

	return nil
}

func insertProducts(tx *sql.Tx, launchID string, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := squirrel.
		Insert(productTable).
		Columns("id", "launch_id", "type", "name", "price").
		PlaceholderFormat(squirrel.Dollar)

	for i := range products {
		p := &products[i]
		if p.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id do produto: %w", err)
			}
			p.ID = id
		}
		query = query.Values(p.ID, launchID, p.Type, p.Name, p.Price)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção de produtos: %w", err)
	}

	if _, err := tx.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir produtos: %w", err)
	}

	return nil
}

func insertOrderBumps(tx *sql.Tx, launchID string, bumps []domain.OrderBump) error {
	if len(bumps) == 0 {
		return nil
	}

	query := squirrel.
		Insert(orderBumpTable).
		Columns("id", "launch_id", "name", "label", "price", "has_cashback", "cashback_amount").
		PlaceholderFormat(squirrel.Dollar)

	for i := range bumps {
		b := &bumps[i]
		if b.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id do order bump: %w", err)
			}
			b.ID = id
		}
		query = query.Values(b.ID, launchID, b.Name, b.Label, b.Price, b.HasCashback, b.CashbackAmount)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção de order bumps: %w", err)
	}

	if _, err := tx.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir order bumps: %w", err)
	}

	return nil
}

func (r *launchRepository) GetLaunchByID(id string) (*domain.Launch, error) {
	query, args, err := squirrel.
		Select(launchColumns()...).
		From(launchTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	launch, err := scanLaunchRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
	}

	if err := r.loadBatches(launch); err != nil {
		return nil, err
	}
	if err := r.loadProducts(launch); err != nil {
		return nil, err
	}
	if err := r.loadOrderBumps(launch); err != nil {
		return nil, err
	}

	return launch, nil
}

func (r *launchRepository) ListLaunches(statuses []domain.LaunchStatus) ([]*domain.Launch, error) {
	queryBuilder := squirrel.
		Select(launchColumns()...).
		From(launchTable).
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	launches := make([]*domain.Launch, 0)
	for rows.Next() {
		launch, err := scanLaunch(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		launches = append(launches, launch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return launches, nil
}

func (r *launchRepository) UpdateLaunch(launch *domain.Launch) error {
	query, args, err := squirrel.
		Update(launchTable).
		Set("name", launch.Name).
		Set("niche", launch.Niche).
		Set("expert", launch.Expert).
		Set("followers", launch.Followers).
		Set("target_tickets", launch.TargetTickets).
		Set("budget", launch.Budget).
		Set("sale_days", launch.SaleDays).
		Set("event_date", launch.EventDate).
		Set("big_idea", launch.BigIdea).
		Set("narrative", launch.Narrative).
		Set("theme", launch.Theme).
		Set("max_cpa", launch.MaxCPA).
		Set("daily_pacing", launch.DailyPacing).
		Set("status", launch.Status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": launch.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar lançamento: %w", err)
	}

	return nil
}

// DeleteLaunch remove o lançamento e suas dependências na mesma transação
func (r *launchRepository) DeleteLaunch(ctx context.Context, id string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// step_item cai em cascata junto com launch_step
		dependents := []string{
			"generated_content", "communication", "launch_step", ticketBatchTable, productTable, orderBumpTable,
		}

		for _, table := range dependents {
			query, args, err := squirrel.
				Delete(table).
				Where(squirrel.Eq{"launch_id": id}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de remoção (%s): %w", table, err)
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao remover dependências (%s): %w", table, err)
			}
		}

		query, args, err := squirrel.
			Delete(launchTable).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de remoção do lançamento: %w", err)
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao remover lançamento: %w", err)
		}

		return nil
	})
}

func (r *launchRepository) loadBatches(launch *domain.Launch) error {
	query, args, err := squirrel.
		Select("id", "launch_id", "name", "batch_order", "price", "quantity", "sold", "status").
		From(ticketBatchTable).
		Where(squirrel.Eq{"launch_id": launch.ID}).
		OrderBy("batch_order ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar lotes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.TicketBatch
		if err := rows.Scan(&b.ID, &b.LaunchID, &b.Name, &b.Order, &b.Price, &b.Quantity, &b.Sold, &b.Status); err != nil {
			return fmt.Errorf("erro ao escanear lote: %w", err)
		}
		launch.TicketBatches = append(launch.TicketBatches, b)
	}

	return rows.Err()
}

func (r *launchRepository) loadProducts(launch *domain.Launch) error {
	query, args, err := squirrel.
		Select("id", "launch_id", "type", "name", "price").
		From(productTable).
		Where(squirrel.Eq{"launch_id": launch.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.LaunchID, &p.Type, &p.Name, &p.Price); err != nil {
			return fmt.Errorf("erro ao escanear produto: %w", err)
		}
		launch.Products = append(launch.Products, p)
	}

	return rows.Err()
}

func (r *launchRepository) loadOrderBumps(launch *domain.Launch) error {
	query, args, err := squirrel.
		Select("id", "launch_id", "name", "label", "price", "has_cashback", "cashback_amount").
		From(orderBumpTable).
		Where(squirrel.Eq{"launch_id": launch.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar order bumps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.OrderBump
		if err := rows.Scan(&b.ID, &b.LaunchID, &b.Name, &b.Label, &b.Price, &b.HasCashback, &b.CashbackAmount); err != nil {
			return fmt.Errorf("erro ao escanear order bump: %w", err)
		}
		launch.OrderBumps = append(launch.OrderBumps, b)
	}

	return rows.Err()
}

func launchColumns() []string {
	return []string{
		"id", "name", "niche", "expert", "followers",
		"target_tickets", "budget", "sale_days",
		"event_date", "event_duration", "event_platform",
		"big_idea", "narrative", "theme",
		"max_cpa", "daily_pacing", "status",
		"created_at", "updated_at",
	}
}

func scanLaunch(rows *sql.Rows) (*domain.Launch, error) {
	launch := &domain.Launch{}
	err := rows.Scan(
		&launch.ID, &launch.Name, &launch.Niche, &launch.Expert, &launch.Followers,
		&launch.TargetTickets, &launch.Budget, &launch.SaleDays,
		&launch.EventDate, &launch.EventDuration, &launch.EventPlatform,
		&launch.BigIdea, &launch.Narrative, &launch.Theme,
		&launch.MaxCPA, &launch.DailyPacing, &launch.Status,
		&launch.CreatedAt, &launch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return launch, nil
}

func scanLaunchRow(row *sql.Row) (*domain.Launch, error) {
	launch := &domain.Launch{}
	err := row.Scan(
		&launch.ID, &launch.Name, &launch.Niche, &launch.Expert, &launch.Followers,
		&launch.TargetTickets, &launch.Budget, &launch.SaleDays,
		&launch.EventDate, &launch.EventDuration, &launch.EventPlatform,
		&launch.BigIdea, &launch.Narrative, &launch.Theme,
		&launch.MaxCPA, &launch.DailyPacing, &launch.Status,
		&launch.CreatedAt, &launch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return launch, nil
}
