package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
)

var (
	ErrNotFound  = errors.New("registro não encontrado")
	ErrDuplicate = errors.New("registro duplicado")
)

const dateLayout = "2006-01-02"

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// dateParam envia apenas a parte de data, sem depender do fuso horário da sessão
func dateParam(t time.Time) string {
	return t.Format(dateLayout)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern trata o termo como texto literal, sem curingas do usuário
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// ilikeAny casa o padrão em qualquer uma das colunas
func ilikeAny(pattern string, columns ...string) squirrel.Or {
	or := make(squirrel.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, squirrel.Expr(column+` ILIKE ? ESCAPE '\'`, pattern))
	}
	return or
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
