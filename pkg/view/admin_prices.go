package view

type AdminPriceRow struct {
	ID            string
	ProductID     string
	Type          string
	BillingScheme string
	Status        string
	Active        bool
}

type AdminPricesPage struct {
	Columns []string
	Rows    []AdminPriceRow
	Sort    string
	Dir     string
	NextDir string // what clicking the status header should request next
	DirMark string
	Empty   string
}

type AdminPriceFormValues struct {
	Name        string
	Type        string
	Amount      string // major units, as typed
	Currency    string
	Description string
	LookupKey   string
	Default     bool
	Active      bool
}

type AdminPriceFormPage struct {
	Mode       string // new|edit
	Action     string
	PriceID    string
	ProductID  string
	Values     AdminPriceFormValues
	Errors     map[string]string
	Currencies []string
}
