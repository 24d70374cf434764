package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"blueprint-registry/internal/domains/blueprint"
	"blueprint-registry/pkg/logger"
)

type blueprintService struct {
	repo blueprint.Repository
}

func NewBlueprintService(repo blueprint.Repository) blueprint.Service {
	return &blueprintService{repo: repo}
}

func (s *blueprintService) List(ctx context.Context, filter blueprint.ListFilter) ([]blueprint.BlueprintResponse, error) {
	records, failures, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logListFailures(failures)

	out := make([]blueprint.BlueprintResponse, 0, len(records))
	for _, bp := range records {
		if !matchesFilter(&bp, filter) {
			continue
		}
		out = append(out, *bp.ToResponse())
	}
	return out, nil
}

func (s *blueprintService) GetByID(ctx context.Context, id string) (*blueprint.BlueprintResponse, error) {
	bp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return bp.ToResponse(), nil
}

func (s *blueprintService) Create(ctx context.Context, owner string, req *blueprint.CreateBlueprintRequest) (*blueprint.BlueprintResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity(owner))
	if err != nil {
		return nil, err
	}

	logger.Info("blueprint created", map[string]interface{}{
		"id":    created.ID,
		"owner": created.Owner,
	})

	return created.ToResponse(), nil
}

func (s *blueprintService) Publish(ctx context.Context, id, caller string) (*blueprint.BlueprintResponse, error) {
	return s.transition(ctx, id, caller, blueprint.StatusPublished)
}

func (s *blueprintService) MarkSold(ctx context.Context, id, caller string) (*blueprint.BlueprintResponse, error) {
	return s.transition(ctx, id, caller, blueprint.StatusSold)
}

// transition enforces the lifecycle rules: only the owner may move a record,
// and only along draft -> published -> sold. The mutator returning an error
// guarantees nothing is written on a refused transition.
func (s *blueprintService) transition(ctx context.Context, id, caller string, next blueprint.Status) (*blueprint.BlueprintResponse, error) {
	updated, err := s.repo.Update(ctx, id, func(bp *blueprint.Blueprint) error {
		if !bp.OwnedBy(caller) {
			return blueprint.ErrNotAuthorized
		}
		if !bp.Status.CanTransitionTo(next) {
			return blueprint.ErrInvalidTransition
		}
		bp.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("blueprint status changed", map[string]interface{}{
		"id":     id,
		"status": string(next),
	})

	return updated.ToResponse(), nil
}

func (s *blueprintService) Stats(ctx context.Context) (*blueprint.MarketStats, error) {
	records, failures, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logListFailures(failures)

	stats := &blueprint.MarketStats{Total: len(records), TotalValue: decimal.Zero}
	for _, bp := range records {
		switch bp.Status {
		case blueprint.StatusDraft:
			stats.Drafts++
		case blueprint.StatusPublished:
			stats.Published++
		case blueprint.StatusSold:
			stats.Sold++
		}

		if resp := bp.ToResponse(); resp.Price != nil {
			stats.TotalValue = stats.TotalValue.Add(*resp.Price)
		}
	}
	return stats, nil
}

// logListFailures records skipped items. Nothing is swallowed silently, but
// a bad record never takes the listing down with it.
func (s *blueprintService) logListFailures(failures []blueprint.ListFailure) {
	for _, f := range failures {
		logger.Warn("skipping unreadable blueprint record", map[string]interface{}{
			"id":    f.ID,
			"error": f.Err.Error(),
		})
	}
}

func matchesFilter(bp *blueprint.Blueprint, filter blueprint.ListFilter) bool {
	if filter.Status != "" && string(bp.Status) != filter.Status {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(bp.Title), needle) &&
			!strings.Contains(strings.ToLower(bp.Architect), needle) {
			return false
		}
	}
	return true
}
