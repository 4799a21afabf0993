package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/domain"
	"github.com/habitaclick/search-service/internal/domain/repository"
)

type agentRepository struct {
	db *DB
}

// NewAgentRepository - создание репозитория агентов
func NewAgentRepository(db *DB) repository.AgentRepository {
	return &agentRepository{db: db}
}

// FetchAgents возвращает агентов, работающих в локациях.
// Сортировка домена по умолчанию: рейтинг, затем число сделок.
func (r *agentRepository) FetchAgents(
	ctx context.Context,
	locations []domain.LocationFilter,
	limit, offset int,
) ([]domain.Agent, error) {
	b := &sqlBuilder{}
	locationClause(b, locations)

	query := `
		SELECT id, name, agency_id, city, district, neighborhood, rating,
		       deals_count, created_at
		FROM agents` + b.where() + ` ORDER BY rating DESC, deals_count DESC`

	b.args = append(b.args, limit, offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(b.args)-1, len(b.args))

	var agents []domain.Agent
	if err := r.db.SelectContext(ctx, &agents, query, b.args...); err != nil {
		r.db.logger.Error("FetchAgents query failed", zap.Error(err))
		return nil, fmt.Errorf("fetch agents: %w", err)
	}
	return agents, nil
}
