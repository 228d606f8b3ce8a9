package generator

import (
	"fmt"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

// Categories emits the fixed, hand-curated category set. No randomness.
func (g *Generator) Categories() []model.Category {
	categories := make([]model.Category, 0, len(categorySpecs))
	for _, spec := range categorySpecs {
		categories = append(categories, model.Category{
			ID:          spec.ID,
			Name:        spec.Name,
			Description: fmt.Sprintf("Products in %s category", spec.Name),
			IsActive:    true,
		})
	}
	return categories
}
