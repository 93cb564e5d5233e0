package rules

import (
	"fmt"

	"github.com/westbet/westbetpro/internal/pkg/models"
	"github.com/westbet/westbetpro/internal/pkg/validation"
)

// Catalog is the immutable golden-rule registry. Built once at process
// start; no component mutates it afterwards. Evaluation order is the
// load order, which also decides confidence tie-breaks.
type Catalog struct {
	rules []models.Rule
	byID  map[int]*models.Rule
}

// NewCatalog validates every rule and builds the registry. Duplicate
// ids or a malformed rule fail the whole load.
func NewCatalog(rules []models.Rule) (*Catalog, error) {
	byID := make(map[int]*models.Rule, len(rules))
	owned := make([]models.Rule, len(rules))
	copy(owned, rules)

	for i := range owned {
		if err := validation.ValidateRule(&owned[i]); err != nil {
			return nil, err
		}
		if _, exists := byID[owned[i].ID]; exists {
			return nil, fmt.Errorf("duplicate rule id %d in catalog", owned[i].ID)
		}
		byID[owned[i].ID] = &owned[i]
	}

	return &Catalog{rules: owned, byID: byID}, nil
}

// DefaultCatalog builds the catalog from the built-in golden-rule table.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(GoldenRules())
}

// Rules returns the rules in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) Rules() []models.Rule {
	return c.rules
}

// ByID returns the rule with the given id, or nil.
func (c *Catalog) ByID(id int) *models.Rule {
	return c.byID[id]
}

// Len returns the number of rules.
func (c *Catalog) Len() int {
	return len(c.rules)
}
