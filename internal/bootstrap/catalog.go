package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/giftroll/internal/cases"
	"github.com/osse101/giftroll/internal/config"
)

// LoadCaseCatalog loads CASE_CATALOG_PATH, or the embedded catalog when it is unset
func LoadCaseCatalog(cfg *config.Config) (*cases.Catalog, error) {
	catalog, err := cases.LoadCatalog(cfg.CaseCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	source := cfg.CaseCatalogPath
	if source == "" {
		source = "embedded"
	}
	slog.Info(LogMsgCatalogLoaded, "source", source, "cases", len(catalog.List()))
	return catalog, nil
}
