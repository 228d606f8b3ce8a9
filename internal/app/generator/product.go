package generator

import (
	"fmt"
	"strings"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

// Products generates count products. Each product picks a category
// uniformly, then a brand from that category's brand list, then a
// category-conditioned name. Pricing keeps cost < price <= msrp in
// expectation: cost at 60-80% of the base price, msrp at 110-130%.
func (g *Generator) Products(count int) []model.Product {
	products := make([]model.Product, 0, count)

	for i := 1; i <= count; i++ {
		spec := categorySpecs[g.rng.Intn(len(categorySpecs))]
		brand := g.pick(spec.Brands)
		name := g.productName(spec, brand, i)

		basePrice := float64(g.between(500, 50000))
		unitCost := round2(basePrice * g.betweenFloat(0.60, 0.80))
		unitPrice := round2(basePrice)
		msrp := round2(basePrice * g.betweenFloat(1.10, 1.30))

		weight := g.betweenFloat(0.1, 10.0)
		if spec.Light {
			weight = g.betweenFloat(0.01, 2.0)
		}

		products = append(products, model.Product{
			ID:           uint(i),
			Name:         name,
			CategoryID:   spec.ID,
			Brand:        brand,
			Model:        fmt.Sprintf("Model-%d", g.between(1000, 9999)),
			Description:  fmt.Sprintf("High quality %s from %s", strings.ToLower(name), brand),
			UnitCost:     unitCost,
			UnitPrice:    unitPrice,
			MSRP:         msrp,
			WeightKG:     round2(weight),
			DimensionsCM: fmt.Sprintf("%dx%dx%d cm", g.between(10, 100), g.between(10, 100), g.between(1, 50)),
			IsActive:     g.chance(0.75),
		})
	}

	return products
}

func (g *Generator) productName(spec categorySpec, brand string, id int) string {
	if len(spec.Names) == 0 {
		return fmt.Sprintf("%s Product %d", brand, id)
	}
	stem := g.pick(spec.Names)
	if spec.Numbered {
		return fmt.Sprintf("%s %s %d", brand, stem, g.between(1, 20))
	}
	return fmt.Sprintf("%s %s", brand, stem)
}
