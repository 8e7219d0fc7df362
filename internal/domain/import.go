package domain

type ImportType string

const (
	ImportTypeSales     ImportType = "sales"
	ImportTypeSuppliers ImportType = "suppliers"
	ImportTypePurchases ImportType = "purchases"
)

// ImportField descreve uma coluna aceita por um tipo de importação
type ImportField struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

type ImportPreview struct {
	Delimiter string         `json:"delimiter"`
	Headers   []string       `json:"headers"`
	Rows      [][]string     `json:"rows"`
	Fields    []ImportField  `json:"fields"`
	Mapping   map[string]int `json:"mapping"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportSummary struct {
	Type     ImportType       `json:"type"`
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors"`
}
