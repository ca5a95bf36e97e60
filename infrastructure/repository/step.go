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
	launchStepTable = "launch_step"
	stepItemTable   = "step_item"
)

type StepRepository interface {
	CountByLaunchID(launchID string) (int, error)
	CreateSteps(ctx context.Context, steps []*domain.LaunchStep) error
	ListByLaunchID(launchID string) ([]*domain.LaunchStep, error)
	UpdateStepStatus(stepID, status string, completed bool) error
	UpdateItemCompleted(itemID string, completed bool) error
}

type stepRepository struct {
	conn *postgres.Connection
}

func NewStepRepository(conn *postgres.Connection) StepRepository {
	return &stepRepository{conn: conn}
}

func (r *stepRepository) CountByLaunchID(launchID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(launchStepTable).
		Where(squirrel.Eq{"launch_id": launchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar passos: %w", err)
	}

	return count, nil
}

// CreateSteps insere passos e itens do checklist na mesma transação
func (r *stepRepository) CreateSteps(ctx context.Context, steps []*domain.LaunchStep) error {
	if len(steps) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, step := range steps {
			if step.ID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					return fmt.Errorf("erro ao gerar id do passo: %w", err)
				}
				step.ID = id
			}

			query, args, err := squirrel.
				Insert(launchStepTable).
				Columns("id", "launch_id", "step_key", "phase", "step_order", "status").
				Values(step.ID, step.LaunchID, step.StepKey, step.Phase, step.Order, step.Status).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção do passo: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao inserir passo %s: %w", step.StepKey, err)
			}

			if len(step.Items) == 0 {
				continue
			}

			itemsQuery := squirrel.
				Insert(stepItemTable).
				Columns("id", "step_id", "label", "item_order", "completed").
				PlaceholderFormat(squirrel.Dollar)

			for i := range step.Items {
				item := &step.Items[i]
				if item.ID == "" {
					id, err := utils.GenerateID()
					if err != nil {
						return fmt.Errorf("erro ao gerar id do item: %w", err)
					}
					item.ID = id
				}
				item.StepID = step.ID
				itemsQuery = itemsQuery.Values(item.ID, step.ID, item.Label, item.Order, item.Completed)
			}

			sqlQuery, args, err := itemsQuery.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção de itens: %w", err)
			}

			if _, err := tx.Exec(sqlQuery, args...); err != nil {
				return fmt.Errorf("erro ao inserir itens do passo %s: %w", step.StepKey, err)
			}
		}

		return nil
	})
}

func (r *stepRepository) ListByLaunchID(launchID string) ([]*domain.LaunchStep, error) {
	query, args, err := squirrel.
		Select("id", "launch_id", "step_key", "phase", "step_order", "status", "completed_at").
		From(launchStepTable).
		Where(squirrel.Eq{"launch_id": launchID}).
		OrderBy("phase ASC", "step_order ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	steps := make([]*domain.LaunchStep, 0)
	byID := make(map[string]*domain.LaunchStep)

	for rows.Next() {
		step := &domain.LaunchStep{}
		if err := rows.Scan(&step.ID, &step.LaunchID, &step.StepKey, &step.Phase, &step.Order, &step.Status, &step.CompletedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear passo: %w", err)
		}
		steps = append(steps, step)
		byID[step.ID] = step
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(steps) == 0 {
		return steps, nil
	}

	if err := r.loadItems(launchID, byID); err != nil {
		return nil, err
	}

	return steps, nil
}

func (r *stepRepository) loadItems(launchID string, stepsByID map[string]*domain.LaunchStep) error {
	query, args, err := squirrel.
		Select("si.id", "si.step_id", "si.label", "si.item_order", "si.completed").
		From(stepItemTable + " si").
		Join(launchStepTable + " ls ON ls.id = si.step_id").
		Where(squirrel.Eq{"ls.launch_id": launchID}).
		OrderBy("si.item_order ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.StepItem
		if err := rows.Scan(&item.ID, &item.StepID, &item.Label, &item.Order, &item.Completed); err != nil {
			return fmt.Errorf("erro ao escanear item: %w", err)
		}
		if step, ok := stepsByID[item.StepID]; ok {
			step.Items = append(step.Items, item)
		}
	}

	return rows.Err()
}

func (r *stepRepository) UpdateStepStatus(stepID, status string, completed bool) error {
	queryBuilder := squirrel.
		Update(launchStepTable).
		Set("status", status).
		Where(squirrel.Eq{"id": stepID}).
		PlaceholderFormat(squirrel.Dollar)

	if completed {
		queryBuilder = queryBuilder.Set("completed_at", squirrel.Expr("CURRENT_TIMESTAMP"))
	} else {
		queryBuilder = queryBuilder.Set("completed_at", nil)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar status do passo: %w", err)
	}

	return nil
}

func (r *stepRepository) UpdateItemCompleted(itemID string, completed bool) error {
	query, args, err := squirrel.
		Update(stepItemTable).
		Set("completed", completed).
		Where(squirrel.Eq{"id": itemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar item do checklist: %w", err)
	}

	return nil
}
