package domain

import "time"

type Supplier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultSuppliers são inseridos quando a tabela de fornecedores está vazia
var DefaultSuppliers = []string{"AIA", "GranTerre", "MIA"}
