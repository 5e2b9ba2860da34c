package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"

	"clinical-records-api/internal/platform/credential"
)

// Opener construye el *sql.DB de una única conexión autenticada con el token
// (buffer de handshake). No debe abrir la conexión física: eso lo hace Acquire.
type Opener func(ctx context.Context, cfg Config, token []byte) (*sql.DB, error)

func openerFor(driver string) (Opener, error) {
	switch driver {
	case DriverSQLServer:
		return openSQLServer, nil
	case DriverPgx:
		return openPostgres, nil
	default:
		return nil, fmt.Errorf("no opener for driver %q", driver)
	}
}

// openSQLServer usa el conector de access token de go-mssqldb: el token va en
// el paquete FEDAUTH del login, nunca en el connection string.
func openSQLServer(_ context.Context, cfg Config, token []byte) (*sql.DB, error) {
	raw, err := credential.DecodeAccessToken(token)
	if err != nil {
		return nil, err
	}
	connector, err := mssql.NewAccessTokenConnector(cfg.ConnString(), func() (string, error) {
		return raw, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sqlserver connector: %w", err)
	}
	return sql.OpenDB(connector), nil
}

// openPostgres: Azure Database for PostgreSQL acepta el token de Entra como password.
func openPostgres(_ context.Context, cfg Config, token []byte) (*sql.DB, error) {
	raw, err := credential.DecodeAccessToken(token)
	if err != nil {
		return nil, err
	}
	cc, err := pgx.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("pgx config: %w", err)
	}
	cc.Password = raw
	return stdlib.OpenDB(*cc), nil
}
