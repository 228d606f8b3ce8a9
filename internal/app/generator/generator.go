package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hraza/pakretail-datagen/internal/app/model"
)

var (
	// ErrInvalidCount is returned when a requested row count is not positive.
	ErrInvalidCount = errors.New("row count must be a positive integer")
	// ErrEmptyTable is returned when a dependent generator is invoked with
	// an empty parent table.
	ErrEmptyTable = errors.New("dependent table is empty")
	// ErrNoStaffedStores is returned when order generation finds no store
	// with at least one employee to sell from.
	ErrNoStaffedStores = errors.New("no store has any assigned employee")
)

// Counts holds the requested top-level row counts for one generation run.
type Counts struct {
	Customers int
	Products  int
	Stores    int
	Employees int
	Orders    int
}

// Validate fails fast on non-positive counts so a run never produces
// partially-consistent output.
func (c Counts) Validate() error {
	for _, v := range []struct {
		name  string
		count int
	}{
		{"customers", c.Customers},
		{"products", c.Products},
		{"stores", c.Stores},
		{"employees", c.Employees},
		{"orders", c.Orders},
	} {
		if v.count <= 0 {
			return fmt.Errorf("%w: %s=%d", ErrInvalidCount, v.name, v.count)
		}
	}
	return nil
}

// Dataset is the complete output of one generation run. All foreign keys
// reference rows present in the same dataset.
type Dataset struct {
	Customers    []model.Customer
	Addresses    []model.Address
	Categories   []model.Category
	Products     []model.Product
	Stores       []model.Store
	Employees    []model.Employee
	Orders       []model.Order
	OrderLines   []model.OrderLine
	SalesRecords []model.SalesRecord
}

// Generator produces referentially-consistent synthetic retail datasets.
// All randomness is drawn from the injected source, so a fixed seed yields
// an identical dataset on every run.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New returns a generator drawing from rng. The current time is captured
// once so that date-dependent fields (order status, registration windows)
// are consistent within a run.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: time.Now()}
}

// Generate builds the full dataset top-down in dependency order:
// categories, customers and stores first, then addresses, products and
// employees, then orders, then the two back-fill passes and the flattened
// reporting view. Any failure aborts the run with no partial output.
func (g *Generator) Generate(counts Counts) (*Dataset, error) {
	if err := counts.Validate(); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	ds.Customers = g.Customers(counts.Customers)
	ds.Addresses = g.Addresses(ds.Customers)
	ds.Categories = g.Categories()
	ds.Products = g.Products(counts.Products)
	ds.Stores = g.Stores(counts.Stores)

	employees, err := g.Employees(ds.Stores, counts.Employees)
	if err != nil {
		return nil, fmt.Errorf("generate employees: %w", err)
	}
	ds.Employees = employees
	g.AssignManagers(ds.Employees)
	AssignStoreManagers(ds.Stores, ds.Employees)

	orders, lines, err := g.Orders(ds.Customers, ds.Stores, ds.Employees, ds.Products, counts.Orders)
	if err != nil {
		return nil, fmt.Errorf("generate orders: %w", err)
	}
	ds.Orders = orders
	ds.OrderLines = lines
	ds.SalesRecords = SalesRows(ds.Orders, ds.OrderLines)

	return ds, nil
}

// Random draw helpers. All of them consume from the injected source only.

func (g *Generator) between(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

func (g *Generator) betweenFloat(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

// daysAgo returns a date up to maxDays in the past, truncated to midnight.
func (g *Generator) daysAgo(maxDays int) time.Time {
	d := g.now.AddDate(0, 0, -g.between(0, maxDays))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func (g *Generator) phoneNumber() string {
	return fmt.Sprintf("+92-%d-%d", g.between(300, 349), g.between(1000000, 9999999))
}

func (g *Generator) postalCode() string {
	return fmt.Sprintf("%d", g.between(10000, 99999))
}

// locality picks a province and one of its cities together so the pair is
// always consistent.
func (g *Generator) locality() (province, city string) {
	p := provinces[g.rng.Intn(len(provinces))]
	return p.Name, p.Cities[g.rng.Intn(len(p.Cities))]
}
