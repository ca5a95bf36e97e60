package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/launch-planner-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/pkg/utils"
)

const generatedContentTable = "generated_content"

type ContentRepository interface {
	Create(content *domain.GeneratedContent) error
	GetByID(id string) (*domain.GeneratedContent, error)
	ListByLaunchID(launchID string) ([]*domain.GeneratedContent, error)
	SetApproval(id string, approved bool) error
	Delete(id string) error
}

type contentRepository struct {
	conn *postgres.Connection
}

func NewContentRepository(conn *postgres.Connection) ContentRepository {
	return &contentRepository{conn: conn}
}

func (r *contentRepository) Create(content *domain.GeneratedContent) error {
	if content.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do conteúdo: %w", err)
		}
		content.ID = id
	}

	query, args, err := squirrel.
		Insert(generatedContentTable).
		Columns("id", "launch_id", "type", "subtype", "content", "is_approved", "communication_id").
		Values(content.ID, content.LaunchID, content.Type, content.Subtype, content.Content, content.IsApproved, content.CommunicationID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir conteúdo gerado: %w", err)
	}

	return nil
}

func (r *contentRepository) GetByID(id string) (*domain.GeneratedContent, error) {
	query, args, err := squirrel.
		Select(contentColumns()...).
		From(generatedContentTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	content := &domain.GeneratedContent{}
	err = row.Scan(
		&content.ID, &content.LaunchID, &content.Type, &content.Subtype,
		&content.Content, &content.IsApproved, &content.CommunicationID, &content.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conteúdo: %w", err)
	}

	return content, nil
}

func (r *contentRepository) ListByLaunchID(launchID string) ([]*domain.GeneratedContent, error) {
	query, args, err := squirrel.
		Select(contentColumns()...).
		From(generatedContentTable).
		Where(squirrel.Eq{"launch_id": launchID}).
		OrderBy("created_at DESC").
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

	contents := make([]*domain.GeneratedContent, 0)
	for rows.Next() {
		content := &domain.GeneratedContent{}
		err := rows.Scan(
			&content.ID, &content.LaunchID, &content.Type, &content.Subtype,
			&content.Content, &content.IsApproved, &content.CommunicationID, &content.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conteúdo: %w", err)
		}
		contents = append(contents, content)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return contents, nil
}

func (r *contentRepository) SetApproval(id string, approved bool) error {
	query, args, err := squirrel.
		Update(generatedContentTable).
		Set("is_approved", approved).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar aprovação do conteúdo: %w", err)
	}

	return nil
}

func (r *contentRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(generatedContentTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover conteúdo: %w", err)
	}

	return nil
}

func contentColumns() []string {
	return []string{
		"id", "launch_id", "type", "subtype", "content",
		"is_approved", "communication_id", "created_at",
	}
}
