package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/launch-planner-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/pkg/utils"
)

const communicationTable = "communication"

type CommunicationRepository interface {
	CountByLaunchID(launchID string) (int, error)
	CreateMany(comms []*domain.Communication) error
	ListByLaunchID(launchID string) ([]*domain.Communication, error)
	GetByID(id string) (*domain.Communication, error)
	UpdateStatus(id, status string) error
	SetApprovedContent(id string, contentID *string, content string) error
	ClearApprovedContent(contentID string) error
	ListPendingByDay(launchID string, day int) ([]*domain.Communication, error)
}

type communicationRepository struct {
	conn *postgres.Connection
}

func NewCommunicationRepository(conn *postgres.Connection) CommunicationRepository {
	return &communicationRepository{conn: conn}
}

// CountByLaunchID conta as linhas já inicializadas de um lançamento.
// A inicialização do cronograma usa essa contagem como guarda de idempotência
func (r *communicationRepository) CountByLaunchID(launchID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(communicationTable).
		Where(squirrel.Eq{"launch_id": launchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar comunicações: %w", err)
	}

	return count, nil
}

// CreateMany insere as linhas do cronograma em lote
func (r *communicationRepository) CreateMany(comms []*domain.Communication) error {
	if len(comms) == 0 {
		return nil
	}

	query := squirrel.
		Insert(communicationTable).
		Columns("id", "launch_id", "day", "date", "channel", "type", "title", "content", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range comms {
		if c.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id da comunicação: %w", err)
			}
			c.ID = id
		}
		query = query.Values(c.ID, c.LaunchID, c.Day, c.Date, c.Channel, c.Type, c.Title, c.Content, c.Status)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir comunicações: %w", err)
	}

	return nil
}

func (r *communicationRepository) ListByLaunchID(launchID string) ([]*domain.Communication, error) {
	query, args, err := squirrel.
		Select(communicationColumns()...).
		From(communicationTable).
		Where(squirrel.Eq{"launch_id": launchID}).
		OrderBy("day ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCommunications(query, args)
}

func (r *communicationRepository) GetByID(id string) (*domain.Communication, error) {
	query, args, err := squirrel.
		Select(communicationColumns()...).
		From(communicationTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	comm := &domain.Communication{}
	err = row.Scan(
		&comm.ID, &comm.LaunchID, &comm.Day, &comm.Date, &comm.Channel,
		&comm.Type, &comm.Title, &comm.Content, &comm.Status,
		&comm.ApprovedContentID, &comm.CreatedAt, &comm.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear comunicação: %w", err)
	}

	return comm, nil
}

func (r *communicationRepository) UpdateStatus(id, status string) error {
	query, args, err := squirrel.
		Update(communicationTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar status da comunicação: %w", err)
	}

	return nil
}

// SetApprovedContent vincula (ou desvincula, com contentID nulo) o conteúdo
// aprovado de uma ação, espelhando o texto na própria linha
func (r *communicationRepository) SetApprovedContent(id string, contentID *string, content string) error {
	query, args, err := squirrel.
		Update(communicationTable).
		Set("approved_content_id", contentID).
		Set("content", content).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao vincular conteúdo aprovado: %w", err)
	}

	return nil
}

// ClearApprovedContent remove o vínculo de um conteúdo em todas as ações
func (r *communicationRepository) ClearApprovedContent(contentID string) error {
	query, args, err := squirrel.
		Update(communicationTable).
		Set("approved_content_id", nil).
		Set("content", "").
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"approved_content_id": contentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao desvincular conteúdo: %w", err)
	}

	return nil
}

func (r *communicationRepository) ListPendingByDay(launchID string, day int) ([]*domain.Communication, error) {
	query, args, err := squirrel.
		Select(communicationColumns()...).
		From(communicationTable).
		Where(squirrel.Eq{
			"launch_id": launchID,
			"day":       day,
			"status":    domain.CommunicationStatusPending,
		}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCommunications(query, args)
}

func (r *communicationRepository) queryCommunications(query string, args []interface{}) ([]*domain.Communication, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	comms := make([]*domain.Communication, 0)
	for rows.Next() {
		comm := &domain.Communication{}
		err := rows.Scan(
			&comm.ID, &comm.LaunchID, &comm.Day, &comm.Date, &comm.Channel,
			&comm.Type, &comm.Title, &comm.Content, &comm.Status,
			&comm.ApprovedContentID, &comm.CreatedAt, &comm.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear comunicação: %w", err)
		}
		comms = append(comms, comm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return comms, nil
}

func communicationColumns() []string {
	return []string{
		"id", "launch_id", "day", "date", "channel", "type", "title",
		"content", "status", "approved_content_id", "created_at", "updated_at",
	}
}
