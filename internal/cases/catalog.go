package cases

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/osse101/giftroll/configs"
	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/validation"
)

type catalogFile struct {
	Cases []domain.Case `json:"cases"`
}

// Catalog is the validated set of cases keyed by type
type Catalog struct {
	order   []domain.CaseType
	cases   map[domain.CaseType]domain.Case
	weights map[domain.CaseType][]int64
}

// LoadCatalog reads the catalog at path, or the embedded default when path is empty
func LoadCatalog(path string) (*Catalog, error) {
	data := configs.CaseCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadCatalog, err)
		}
		data = raw
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	if err := validation.ValidateCaseCatalog(data); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadCatalog, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadCatalog, err)
	}
	if len(file.Cases) == 0 {
		return nil, fmt.Errorf("%s: %s", ErrContextFailedToLoadCatalog, ErrMsgEmptyCatalog)
	}

	c := &Catalog{
		cases:   make(map[domain.CaseType]domain.Case, len(file.Cases)),
		weights: make(map[domain.CaseType][]int64, len(file.Cases)),
	}
	for _, cs := range file.Cases {
		if _, dup := c.cases[cs.Type]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateCase, cs.Type)
		}
		if cs.Cost.Sign() < 0 {
			return nil, fmt.Errorf(ErrMsgNegativeAmount, cs.Type)
		}

		weights := make([]int64, len(cs.Rewards))
		var total int64
		for i, r := range cs.Rewards {
			switch r.Kind {
			case domain.RewardTON, domain.RewardNFT, domain.RewardNothing:
			default:
				return nil, fmt.Errorf(ErrMsgUnknownKind, cs.Type, r.Name, r.Kind)
			}
			if r.Value.Sign() < 0 {
				return nil, fmt.Errorf(ErrMsgNegativeAmount, cs.Type)
			}
			weights[i] = int64(math.Round(r.Chance * weightScale))
			if weights[i] > 0 {
				total += weights[i]
			}
		}
		if total == 0 {
			return nil, fmt.Errorf(ErrMsgNoRewards, cs.Type)
		}

		c.order = append(c.order, cs.Type)
		c.cases[cs.Type] = cs
		c.weights[cs.Type] = weights
	}
	return c, nil
}

// Get returns a case by type
func (c *Catalog) Get(caseType domain.CaseType) (domain.Case, bool) {
	cs, ok := c.cases[caseType]
	return cs, ok
}

// List returns every case in file order
func (c *Catalog) List() []domain.Case {
	out := make([]domain.Case, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, c.cases[t])
	}
	return out
}
