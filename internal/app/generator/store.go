package generator

import (
	"fmt"
	"strings"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

// Stores generates count stores. ManagerID stays unset here; it is
// back-filled by AssignStoreManagers once employees exist.
func (g *Generator) Stores(count int) []model.Store {
	stores := make([]model.Store, 0, count)

	for i := 1; i <= count; i++ {
		province, city := g.locality()
		name := fmt.Sprintf("%s %s %d", g.pick(storeNamePrefixes), g.pick(storeNameSuffixes), i)

		stores = append(stores, model.Store{
			ID:          uint(i),
			Name:        name,
			Code:        fmt.Sprintf("ST%03d", i),
			Address:     fmt.Sprintf("%d %s", g.between(1, 999), g.pick(storeStreets)),
			City:        city,
			Province:    province,
			PostalCode:  g.postalCode(),
			Phone:       g.phoneNumber(),
			Email:       fmt.Sprintf("info@%s.com", strings.ReplaceAll(strings.ToLower(name), " ", "")),
			Type:        g.pick(storeTypes),
			IsActive:    g.chance(0.75),
			OpeningDate: g.daysAgo(3650), // within last 10 years
		})
	}

	return stores
}
