package view

type AdminCategoryOption struct {
	ID   int
	Slug string
}

type AdminProductFormValues struct {
	Name        string
	Description string
	CategoryID  int
	Nutrition   string // raw JSON, as typed
	Amount      string
	Currency    string
}

type AdminProductFormPage struct {
	Values     AdminProductFormValues
	Errors     map[string]string
	Categories []AdminCategoryOption
	Currencies []string
}
