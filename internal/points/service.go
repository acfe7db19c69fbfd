package points

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service performs the main screen's remote write.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a points service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Write sets the placeholder value. Repeating it leaves a single node.
func (s *Service) Write(ctx context.Context) (Node, error) {
	node := Node{Path: Path, Value: Placeholder, UpdatedAt: time.Now().UTC()}
	if err := s.repo.Set(ctx, node); err != nil {
		return Node{}, fmt.Errorf("write %s: %w", Path, err)
	}
	if s.logger != nil {
		s.logger.Info("points.written", slog.String("path", node.Path), slog.String("value", node.Value))
	}
	return node, nil
}

// Read returns the current node.
func (s *Service) Read(ctx context.Context) (Node, error) {
	return s.repo.Get(ctx, Path)
}
