package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
)

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected rune
	}{
		{name: "Vírgula", data: "date,cash_income\n2024-03-01,120.50\n", expected: ','},
		{name: "Ponto e vírgula com decimais em vírgula", data: "Data;Incasso Contante\n2024-03-01;120,50\n01/03/2024;99,00\n", expected: ';'},
		{name: "Tabulação", data: "date\tcash_income\n2024-03-01\t10\n", expected: '\t'},
		{name: "Barra vertical", data: "name|notes\nAIA|frutta\n", expected: '|'},
		{name: "Coluna única usa vírgula", data: "name\nAIA\nMIA\n", expected: ','},
		{name: "Quebras de linha Windows", data: "a;b;c\r\n1;2;3\r\n", expected: ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sniffDelimiter([]byte(tt.data)))
		})
	}
}

func TestReadRecords(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Data;Note\n2024-03-01;\"apertura; festa\"\n")...)

	records, delim, err := readRecords(data)
	require.NoError(t, err)
	assert.Equal(t, ';', delim)
	require.Len(t, records, 2)
	assert.Equal(t, "Data", records[0][0])
	assert.Equal(t, "apertura; festa", records[1][1])

	_, _, err = readRecords([]byte{0xEF, 0xBB, 0xBF, '\n'})
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestAutoMapping(t *testing.T) {
	fields, ok := Fields(domain.ImportTypePurchases)
	require.True(t, ok)

	mapping := autoMapping([]string{"Nome Fornitore", " DATE ", "Importo", "pagamento contante"}, fields)

	assert.Equal(t, 0, mapping["supplier_name"])
	assert.Equal(t, 1, mapping["date"])
	assert.Equal(t, 3, mapping["cash_payment"])
	_, mapped := mapping["bank_payment"]
	assert.False(t, mapped)
}
