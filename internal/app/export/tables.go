package export

import (
	"strconv"
	"time"

	"github.com/hraza/pakretail-datagen/internal/app/generator"
)

const dateLayout = "2006-01-02"

// table is one exportable table: a name, a header row of column names, and
// the serialized data rows. The header columns follow the entity attributes
// so external loaders can map them by name.
type table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// tables flattens the dataset into the export order: parents before
// children, the denormalized sales view last.
func tables(ds *generator.Dataset) []table {
	return []table{
		customersTable(ds),
		addressesTable(ds),
		categoriesTable(ds),
		productsTable(ds),
		storesTable(ds),
		employeesTable(ds),
		ordersTable(ds),
		orderDetailsTable(ds),
		salesDataTable(ds),
	}
}

func customersTable(ds *generator.Dataset) table {
	t := table{
		Name: "customers",
		Header: []string{
			"CUSTOMER_ID", "FIRST_NAME", "LAST_NAME", "EMAIL", "PHONE", "DATE_OF_BIRTH",
			"GENDER", "MARITAL_STATUS", "EDUCATION_LEVEL", "ANNUAL_INCOME",
			"CUSTOMER_SEGMENT", "REGISTRATION_DATE", "IS_ACTIVE",
		},
	}
	for _, c := range ds.Customers {
		t.Rows = append(t.Rows, []string{
			formatID(c.ID), c.FirstName, c.LastName, c.Email, c.Phone, c.DateOfBirth.Format(dateLayout),
			c.Gender, c.MaritalStatus, c.EducationLevel, strconv.Itoa(c.AnnualIncome),
			string(c.Segment), c.RegistrationDate.Format(dateLayout), formatBool(c.IsActive),
		})
	}
	return t
}

func addressesTable(ds *generator.Dataset) table {
	t := table{
		Name: "customer_addresses",
		Header: []string{
			"ADDRESS_ID", "CUSTOMER_ID", "ADDRESS_TYPE", "STREET_ADDRESS",
			"CITY", "PROVINCE", "POSTAL_CODE", "COUNTRY", "IS_DEFAULT",
		},
	}
	for _, a := range ds.Addresses {
		t.Rows = append(t.Rows, []string{
			formatID(a.ID), formatID(a.CustomerID), string(a.Type), a.StreetAddress,
			a.City, a.Province, a.PostalCode, a.Country, formatBool(a.IsDefault),
		})
	}
	return t
}

func categoriesTable(ds *generator.Dataset) table {
	t := table{
		Name:   "product_categories",
		Header: []string{"CATEGORY_ID", "CATEGORY_NAME", "DESCRIPTION", "PARENT_CATEGORY_ID", "IS_ACTIVE"},
	}
	for _, c := range ds.Categories {
		t.Rows = append(t.Rows, []string{
			formatID(c.ID), c.Name, c.Description, formatNullableID(c.ParentCategoryID), formatBool(c.IsActive),
		})
	}
	return t
}

func productsTable(ds *generator.Dataset) table {
	t := table{
		Name: "products",
		Header: []string{
			"PRODUCT_ID", "PRODUCT_NAME", "CATEGORY_ID", "BRAND", "MODEL", "DESCRIPTION",
			"UNIT_COST", "UNIT_PRICE", "MSRP", "WEIGHT_KG", "DIMENSIONS_CM", "IS_ACTIVE",
		},
	}
	for _, p := range ds.Products {
		t.Rows = append(t.Rows, []string{
			formatID(p.ID), p.Name, formatID(p.CategoryID), p.Brand, p.Model, p.Description,
			formatMoney(p.UnitCost), formatMoney(p.UnitPrice), formatMoney(p.MSRP),
			formatMoney(p.WeightKG), p.DimensionsCM, formatBool(p.IsActive),
		})
	}
	return t
}

func storesTable(ds *generator.Dataset) table {
	t := table{
		Name: "stores",
		Header: []string{
			"STORE_ID", "STORE_NAME", "STORE_CODE", "ADDRESS", "CITY", "PROVINCE",
			"POSTAL_CODE", "PHONE", "EMAIL", "MANAGER_ID", "STORE_TYPE", "IS_ACTIVE", "OPENING_DATE",
		},
	}
	for _, s := range ds.Stores {
		t.Rows = append(t.Rows, []string{
			formatID(s.ID), s.Name, s.Code, s.Address, s.City, s.Province,
			s.PostalCode, s.Phone, s.Email, formatNullableID(s.ManagerID),
			s.Type, formatBool(s.IsActive), s.OpeningDate.Format(dateLayout),
		})
	}
	return t
}

func employeesTable(ds *generator.Dataset) table {
	t := table{
		Name: "employees",
		Header: []string{
			"EMPLOYEE_ID", "FIRST_NAME", "LAST_NAME", "EMAIL", "PHONE", "HIRE_DATE",
			"JOB_TITLE", "DEPARTMENT", "STORE_ID", "MANAGER_ID", "SALARY", "IS_ACTIVE",
		},
	}
	for _, e := range ds.Employees {
		t.Rows = append(t.Rows, []string{
			formatID(e.ID), e.FirstName, e.LastName, e.Email, e.Phone, e.HireDate.Format(dateLayout),
			e.JobTitle, e.Department, formatID(e.StoreID), formatNullableID(e.ManagerID),
			strconv.Itoa(e.Salary), formatBool(e.IsActive),
		})
	}
	return t
}

func ordersTable(ds *generator.Dataset) table {
	t := table{
		Name: "orders",
		Header: []string{
			"ORDER_ID", "CUSTOMER_ID", "STORE_ID", "EMPLOYEE_ID", "ORDER_DATE", "REQUIRED_DATE",
			"SHIP_DATE", "ORDER_STATUS", "SHIP_METHOD", "TOTAL_AMOUNT", "TAX_AMOUNT",
			"SHIPPING_COST", "DISCOUNT_AMOUNT", "FINAL_AMOUNT", "PAYMENT_METHOD", "PAYMENT_STATUS", "NOTES",
		},
	}
	for _, o := range ds.Orders {
		t.Rows = append(t.Rows, []string{
			formatID(o.ID), formatID(o.CustomerID), formatID(o.StoreID), formatID(o.EmployeeID),
			o.OrderDate.Format(dateLayout), o.RequiredDate.Format(dateLayout), formatNullableDate(o.ShipDate),
			string(o.Status), o.ShipMethod, formatMoney(o.TotalAmount), formatMoney(o.TaxAmount),
			formatMoney(o.ShippingCost), formatMoney(o.DiscountAmount), formatMoney(o.FinalAmount),
			o.PaymentMethod, string(o.PaymentStatus), o.Notes,
		})
	}
	return t
}

func orderDetailsTable(ds *generator.Dataset) table {
	t := table{
		Name: "order_details",
		Header: []string{
			"ORDER_ID", "PRODUCT_ID", "QUANTITY_ORDERED", "UNIT_PRICE", "DISCOUNT_PERCENT", "TOTAL_LINE_AMOUNT",
		},
	}
	for _, l := range ds.OrderLines {
		t.Rows = append(t.Rows, []string{
			formatID(l.OrderID), formatID(l.ProductID), strconv.Itoa(l.Quantity),
			formatMoney(l.UnitPrice), formatMoney(l.DiscountPercent), formatMoney(l.LineTotal),
		})
	}
	return t
}

func salesDataTable(ds *generator.Dataset) table {
	t := table{
		Name: "sales_data",
		Header: []string{
			"ORDER_ID", "CUSTOMER_ID", "PRODUCT_ID", "STORE_ID", "EMPLOYEE_ID", "ORDER_DATE",
			"SHIP_DATE", "QUANTITY_ORDERED", "UNIT_PRICE", "DISCOUNT_PERCENT", "TOTAL_AMOUNT",
			"PAYMENT_METHOD", "ORDER_STATUS", "SHIP_METHOD",
		},
	}
	for _, r := range ds.SalesRecords {
		t.Rows = append(t.Rows, []string{
			formatID(r.OrderID), formatID(r.CustomerID), formatID(r.ProductID), formatID(r.StoreID),
			formatID(r.EmployeeID), r.OrderDate.Format(dateLayout), formatNullableDate(r.ShipDate),
			strconv.Itoa(r.Quantity), formatMoney(r.UnitPrice), formatMoney(r.DiscountPercent),
			formatMoney(r.TotalAmount), r.PaymentMethod, string(r.OrderStatus), r.ShipMethod,
		})
	}
	return t
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatNullableID(id *uint) string {
	if id == nil {
		return ""
	}
	return formatID(*id)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatNullableDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
