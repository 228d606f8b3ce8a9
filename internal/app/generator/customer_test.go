package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

func TestCustomers_BirthYearBounds(t *testing.T) {
	g := newTestGenerator(1)
	customers := g.Customers(500)
	require.Len(t, customers, 500)

	for _, c := range customers {
		year := c.DateOfBirth.Year()
		assert.GreaterOrEqual(t, year, 1944)
		assert.LessOrEqual(t, year, 2006)
	}
}

func TestCustomers_IncomeMatchesSegmentBand(t *testing.T) {
	g := newTestGenerator(2)
	customers := g.Customers(500)

	bands := map[model.CustomerSegment][2]int{
		model.SegmentPremium:    {1_500_000, 5_000_000},
		model.SegmentVIP:        {5_000_000, 15_000_000},
		model.SegmentRegular:    {500_000, 1_500_000},
		model.SegmentOccasional: {200_000, 800_000},
	}

	seen := make(map[model.CustomerSegment]int)
	for _, c := range customers {
		band, ok := bands[c.Segment]
		require.True(t, ok, "unknown segment %q", c.Segment)
		assert.GreaterOrEqual(t, c.AnnualIncome, band[0])
		assert.LessOrEqual(t, c.AnnualIncome, band[1])
		seen[c.Segment]++
	}

	// Regular carries 60% weight, so it must dominate a 500-row sample.
	assert.Greater(t, seen[model.SegmentRegular], seen[model.SegmentPremium])
	assert.Greater(t, seen[model.SegmentRegular], seen[model.SegmentVIP])
}

func TestAddresses_OneDefaultPerCustomer(t *testing.T) {
	g := newTestGenerator(3)
	customers := g.Customers(200)
	addresses := g.Addresses(customers)

	perCustomer := make(map[uint][]model.Address)
	for _, a := range addresses {
		perCustomer[a.CustomerID] = append(perCustomer[a.CustomerID], a)
	}

	require.Len(t, perCustomer, 200)
	for id, addrs := range perCustomer {
		assert.GreaterOrEqual(t, len(addrs), 1, "customer %d", id)
		assert.LessOrEqual(t, len(addrs), 2, "customer %d", id)

		defaults := 0
		for _, a := range addrs {
			if a.IsDefault {
				defaults++
				assert.Equal(t, model.AddressPrimary, a.Type)
			}
			assert.Equal(t, "Pakistan", a.Country)
		}
		assert.Equal(t, 1, defaults, "customer %d must have exactly one default address", id)
	}
}
