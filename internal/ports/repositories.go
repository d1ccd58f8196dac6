package ports

import (
	"context"

	"github.com/bnema/skycircle/internal/domain"
)

type PackRepository interface {
	Save(ctx context.Context, pack domain.StarterPack) error
	GetByURI(ctx context.Context, uri string) (domain.StarterPack, error)
	List(ctx context.Context) ([]domain.StarterPack, error)
}

type RunHistory interface {
	SaveRun(ctx context.Context, run domain.AnalysisRun) error
	GetRun(ctx context.Context, id string) (domain.AnalysisRun, error)
	ListRuns(ctx context.Context, limit int) ([]domain.AnalysisRun, error)
}
