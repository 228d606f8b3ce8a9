package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

// Segment distribution and the income band conditioned on each segment
// (annual income in PKR). Bands are disjoint per segment.
var segmentBands = []struct {
	segment   model.CustomerSegment
	weight    float64
	minIncome int
	maxIncome int
}{
	{model.SegmentPremium, 0.10, 1_500_000, 5_000_000},
	{model.SegmentRegular, 0.60, 500_000, 1_500_000},
	{model.SegmentOccasional, 0.25, 200_000, 800_000},
	{model.SegmentVIP, 0.05, 5_000_000, 15_000_000},
}

// Customers generates count customers with dense sequential IDs 1..count.
// Ages stay within 18-80 years (birth years 1944-2006) and income is drawn
// from the band of the chosen segment.
func (g *Generator) Customers(count int) []model.Customer {
	customers := make([]model.Customer, 0, count)

	for i := 1; i <= count; i++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		email := fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), g.pick(emailDomains))

		// Day capped at 28 to stay valid in every month.
		dob := time.Date(g.between(1944, 2006), time.Month(g.between(1, 12)), g.between(1, 28), 0, 0, 0, 0, time.UTC)

		band := g.segmentBand()

		customers = append(customers, model.Customer{
			ID:               uint(i),
			FirstName:        first,
			LastName:         last,
			Email:            email,
			Phone:            g.phoneNumber(),
			DateOfBirth:      dob,
			Gender:           g.pick(genders),
			MaritalStatus:    g.pick(maritalStatuses),
			EducationLevel:   g.pick(educationLevels),
			AnnualIncome:     g.between(band.minIncome, band.maxIncome),
			Segment:          band.segment,
			RegistrationDate: g.daysAgo(1825), // within last 5 years
			IsActive:         g.chance(0.75),
		})
	}

	return customers
}

func (g *Generator) segmentBand() struct {
	segment   model.CustomerSegment
	weight    float64
	minIncome int
	maxIncome int
} {
	r := g.rng.Float64()
	cumulative := 0.0
	for _, band := range segmentBands {
		cumulative += band.weight
		if r < cumulative {
			return band
		}
	}
	return segmentBands[len(segmentBands)-1]
}
