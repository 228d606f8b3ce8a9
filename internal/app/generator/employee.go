package generator

import (
	"fmt"
	"strings"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

// Salary bands in PKR per month, conditioned on job title.
var salaryBands = map[string][2]int{
	"Manager":    {80000, 150000},
	"Supervisor": {60000, 100000},
}

var defaultSalaryBand = [2]int{30000, 60000}

// Employees generates count employees, each assigned uniformly to one of
// the provided stores. Manager references are left unset; AssignManagers
// and AssignStoreManagers back-fill them afterwards.
func (g *Generator) Employees(stores []model.Store, count int) ([]model.Employee, error) {
	if len(stores) == 0 {
		return nil, fmt.Errorf("%w: stores", ErrEmptyTable)
	}

	employees := make([]model.Employee, 0, count)

	for i := 1; i <= count; i++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		title := g.pick(jobTitles)

		band, ok := salaryBands[title]
		if !ok {
			band = defaultSalaryBand
		}

		employees = append(employees, model.Employee{
			ID:         uint(i),
			FirstName:  first,
			LastName:   last,
			Email:      fmt.Sprintf("%s.%s@company.com", strings.ToLower(first), strings.ToLower(last)),
			Phone:      g.phoneNumber(),
			HireDate:   g.daysAgo(1825), // within last 5 years
			JobTitle:   title,
			Department: g.pick(departments),
			StoreID:    stores[g.rng.Intn(len(stores))].ID,
			Salary:     g.between(band[0], band[1]),
			IsActive:   g.chance(0.75),
		})
	}

	return employees, nil
}

// AssignManagers is the first back-fill pass: roughly 30% of non-manager
// employees get a manager drawn from the manager subset. The manager may
// work at a different store, matching the source data this mirrors.
// Employees that already have a manager are left alone, so the pass is
// idempotent.
func (g *Generator) AssignManagers(employees []model.Employee) {
	var managerIDs []uint
	for _, e := range employees {
		if e.IsManager() {
			managerIDs = append(managerIDs, e.ID)
		}
	}
	if len(managerIDs) == 0 {
		return
	}

	for i := range employees {
		if employees[i].IsManager() || employees[i].ManagerID != nil {
			continue
		}
		if g.chance(0.30) {
			id := managerIDs[g.rng.Intn(len(managerIDs))]
			employees[i].ManagerID = &id
		}
	}
}

// AssignStoreManagers is the second back-fill pass: each store's ManagerID
// is set to the lowest-ID manager employed at that store, if any exists,
// and left unset otherwise. The choice is deterministic given the employee
// table, so repeated passes always produce the same assignment.
func AssignStoreManagers(stores []model.Store, employees []model.Employee) {
	managerByStore := make(map[uint]uint, len(stores))
	for _, e := range employees {
		if !e.IsManager() {
			continue
		}
		if current, ok := managerByStore[e.StoreID]; !ok || e.ID < current {
			managerByStore[e.StoreID] = e.ID
		}
	}

	for i := range stores {
		if id, ok := managerByStore[stores[i].ID]; ok {
			managerID := id
			stores[i].ManagerID = &managerID
		}
	}
}
