package generator

import (
	"fmt"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

// Addresses emits one address (80%) or two (20%) per customer. The first
// address of each customer is always the Primary, default one.
func (g *Generator) Addresses(customers []model.Customer) []model.Address {
	addresses := make([]model.Address, 0, len(customers))
	nextID := uint(1)

	for _, customer := range customers {
		n := 1
		if g.chance(0.20) {
			n = 2
		}

		for i := 0; i < n; i++ {
			province, city := g.locality()

			addrType := model.AddressSecondary
			if i == 0 {
				addrType = model.AddressPrimary
			}

			addresses = append(addresses, model.Address{
				ID:            nextID,
				CustomerID:    customer.ID,
				Type:          addrType,
				StreetAddress: fmt.Sprintf("%s %s", g.streetNumber(), g.pick(streetNames)),
				City:          city,
				Province:      province,
				PostalCode:    g.postalCode(),
				Country:       "Pakistan",
				IsDefault:     i == 0,
			})
			nextID++
		}
	}

	return addresses
}

func (g *Generator) streetNumber() string {
	switch g.rng.Intn(3) {
	case 0:
		return fmt.Sprintf("%d", g.between(1, 999))
	case 1:
		return fmt.Sprintf("Block %s", g.pick(blockLetters))
	default:
		return fmt.Sprintf("House %d", g.between(1, 999))
	}
}
