package sqldb

import "strings"

// dialect arma el SQL de los cuatro patrones de consulta para cada motor.
// Los identificadores vienen de descriptores estáticos o de allow-lists; nunca del caller.
type dialect interface {
	Name() string
	Quote(ident string) string
	Table(schema, name string) string

	SelectAll(t tableRef) string
	// SelectByKey trae hasta 2 filas para poder detectar claves duplicadas.
	SelectByKey(t tableRef) string
	Count(t tableRef) string
	SelectPage(t tableRef, offset, limit int) (string, []any)
	TopBy(t tableRef, field string, limit int) (string, []any)
}

type tableRef struct {
	qualified string
	key       string
	columns   string
}

func newTableRef(d dialect, schema, name, key string, columns []string) tableRef {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = d.Quote(c)
	}
	return tableRef{
		qualified: d.Table(schema, name),
		key:       d.Quote(key),
		columns:   strings.Join(quoted, ", "),
	}
}

func dialectFor(driver string) dialect {
	if driver == DriverPgx {
		return postgresDialect{}
	}
	return sqlServerDialect{}
}

// countAlias evita chocar con la palabra reservada COUNT.
const countAlias = "cnt"

type sqlServerDialect struct{}

func (sqlServerDialect) Name() string { return DriverSQLServer }

func (sqlServerDialect) Quote(ident string) string {
	return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
}

func (d sqlServerDialect) Table(schema, name string) string {
	if schema == "" {
		return d.Quote(name)
	}
	return d.Quote(schema) + "." + d.Quote(name)
}

func (sqlServerDialect) SelectAll(t tableRef) string {
	return "SELECT " + t.columns + " FROM " + t.qualified
}

func (sqlServerDialect) SelectByKey(t tableRef) string {
	return "SELECT TOP (2) " + t.columns + " FROM " + t.qualified + " WHERE " + t.key + " = @p1"
}

func (sqlServerDialect) Count(t tableRef) string {
	return "SELECT COUNT(*) FROM " + t.qualified
}

func (sqlServerDialect) SelectPage(t tableRef, offset, limit int) (string, []any) {
	q := "SELECT " + t.columns + " FROM " + t.qualified +
		" ORDER BY " + t.key + " ASC OFFSET @p1 ROWS FETCH NEXT @p2 ROWS ONLY"
	return q, []any{offset, limit}
}

func (d sqlServerDialect) TopBy(t tableRef, field string, limit int) (string, []any) {
	f := d.Quote(field)
	q := "SELECT TOP (@p1) " + f + ", COUNT(" + f + ") AS " + d.Quote(countAlias) +
		" FROM " + t.qualified +
		" GROUP BY " + f +
		" ORDER BY " + d.Quote(countAlias) + " DESC, " + f + " ASC"
	return q, []any{limit}
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return DriverPgx }

func (postgresDialect) Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (d postgresDialect) Table(schema, name string) string {
	if schema == "" {
		return d.Quote(name)
	}
	return d.Quote(schema) + "." + d.Quote(name)
}

func (postgresDialect) SelectAll(t tableRef) string {
	return "SELECT " + t.columns + " FROM " + t.qualified
}

func (postgresDialect) SelectByKey(t tableRef) string {
	return "SELECT " + t.columns + " FROM " + t.qualified + " WHERE " + t.key + " = $1 LIMIT 2"
}

func (postgresDialect) Count(t tableRef) string {
	return "SELECT COUNT(*) FROM " + t.qualified
}

func (postgresDialect) SelectPage(t tableRef, offset, limit int) (string, []any) {
	q := "SELECT " + t.columns + " FROM " + t.qualified +
		" ORDER BY " + t.key + " ASC LIMIT $1 OFFSET $2"
	return q, []any{limit, offset}
}

func (d postgresDialect) TopBy(t tableRef, field string, limit int) (string, []any) {
	f := d.Quote(field)
	q := "SELECT " + f + ", COUNT(" + f + ") AS " + d.Quote(countAlias) +
		" FROM " + t.qualified +
		" GROUP BY " + f +
		" ORDER BY " + d.Quote(countAlias) + " DESC, " + f + " ASC NULLS FIRST" +
		" LIMIT $1"
	return q, []any{limit}
}
