package importing

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
)

const sniffSampleSize = 1024

var (
	utf8BOM             = []byte{0xEF, 0xBB, 0xBF}
	candidateDelimiters = []rune{',', ';', '\t', '|'}
)

// sniffDelimiter escolhe o separador que aparece o mesmo número de vezes em todas as
// linhas completas da amostra. Em empate vence o mais frequente; sem candidato, usa a vírgula.
func sniffDelimiter(data []byte) rune {
	sample := string(data)
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
		if idx := strings.LastIndex(sample, "\n"); idx > 0 {
			sample = sample[:idx]
		}
	}

	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ','
	}

	best, bestCount := rune(0), 0
	for _, delim := range candidateDelimiters {
		count := strings.Count(lines[0], string(delim))
		if count == 0 {
			continue
		}

		consistent := true
		for _, line := range lines[1:] {
			if strings.Count(line, string(delim)) != count {
				consistent = false
				break
			}
		}

		if consistent && count > bestCount {
			best, bestCount = delim, count
		}
	}
	if best != 0 {
		return best
	}

	// nenhuma consistência: vale a maior contagem no cabeçalho
	for _, delim := range candidateDelimiters {
		if count := strings.Count(lines[0], string(delim)); count > bestCount {
			best, bestCount = delim, count
		}
	}
	if best != 0 {
		return best
	}
	return ','
}

// readRecords remove o BOM, detecta o separador e lê todas as linhas
func readRecords(data []byte) ([][]string, rune, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, 0, ErrEmptyFile
	}

	delim := sniffDelimiter(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, delim, err
	}
	if len(records) == 0 {
		return nil, delim, ErrEmptyFile
	}

	return records, delim, nil
}

// autoMapping associa cada campo à coluna cujo cabeçalho é a chave ou o rótulo do campo
func autoMapping(headers []string, fields []domain.ImportField) map[string]int {
	mapping := make(map[string]int)
	for _, field := range fields {
		for i, header := range headers {
			h := strings.ToLower(strings.TrimSpace(header))
			if h == field.Key || h == strings.ToLower(field.Label) {
				mapping[field.Key] = i
				break
			}
		}
	}
	return mapping
}

// cell devolve o valor da coluna mapeada, ou vazio quando ausente
func cell(record []string, mapping map[string]int, key string) string {
	idx, ok := mapping[key]
	if !ok || idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
