package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/Yiqing888/deadlydelivery.app/internal/advisor"
	"github.com/Yiqing888/deadlydelivery.app/internal/calculator"
	"github.com/Yiqing888/deadlydelivery.app/internal/catalog"
	"github.com/Yiqing888/deadlydelivery.app/internal/config"
	"github.com/Yiqing888/deadlydelivery.app/internal/roadmap"
)

// InitializeAdvisor loads the risk tables and reference catalog and builds the advisor service
func InitializeAdvisor(cfg *config.Config) (advisor.Service, error) {
	riskCfg, err := calculator.LoadRiskConfig(cfg.RiskConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRiskConfig, err)
	}
	slog.Info(LogMsgRiskConfigLoaded, "path", cfg.RiskConfigPath, "floors", len(riskCfg.FloorRisk.Base))

	cat, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "dir", cfg.CatalogDir, "classes", len(cat.Classes()), "monsters", len(cat.Monsters()))

	return advisor.NewService(
		calculator.NewEstimator(riskCfg),
		roadmap.NewGenerator(roadmap.DefaultTemplate()),
		cat,
		advisor.Options{CacheSize: cfg.ResultCacheSize, CacheTTL: cfg.ResultCacheTTL},
	), nil
}
