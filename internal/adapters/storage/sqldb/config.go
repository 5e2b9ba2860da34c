package sqldb

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLServer = "sqlserver"
	DriverPgx       = "pgx"

	DefaultSQLServerPort = 1433
	DefaultPostgresPort  = 5432
	DefaultTimeout       = 30 * time.Second
)

// Config es la configuración estática del driver. Nunca incluye credenciales:
// la autenticación viaja aparte, en el token.
type Config struct {
	Driver                 string
	Server                 string
	Port                   int
	Database               string
	User                   string // sólo pgx: nombre del principal de Entra
	Schema                 string
	Encrypt                bool
	TrustServerCertificate bool
	ConnectionTimeout      time.Duration
	TokenScope             string
	AppName                string
}

// NormalizeDriver acepta los alias habituales y devuelve el nombre canónico.
func NormalizeDriver(d string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "", "sqlserver", "mssql", "odbc driver 18 for sql server", "{odbc driver 18 for sql server}":
		return DriverSQLServer, nil
	case "pgx", "postgres", "postgresql":
		return DriverPgx, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", d)
	}
}

// ParseServer entiende "host", "host,port", "host:port" y "tcp:host,port".
func ParseServer(raw string) (host string, port int, err error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "tcp:"), "TCP:")
	if s == "" {
		return "", 0, fmt.Errorf("empty server")
	}

	if i := strings.LastIndex(s, ","); i >= 0 {
		p, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
		if err != nil {
			return "", 0, fmt.Errorf("invalid port in server %q", raw)
		}
		return strings.TrimSpace(s[:i]), p, nil
	}

	if h, p, err := net.SplitHostPort(s); err == nil {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", 0, fmt.Errorf("invalid port in server %q", raw)
		}
		return h, n, nil
	}

	return s, 0, nil
}

// WithDefaults completa driver, puerto, schema, timeout y scope.
func (c Config) WithDefaults() (Config, error) {
	d, err := NormalizeDriver(c.Driver)
	if err != nil {
		return c, err
	}
	c.Driver = d

	if strings.TrimSpace(c.Server) != "" {
		host, port, err := ParseServer(c.Server)
		if err != nil {
			return c, err
		}
		c.Server = host
		if c.Port == 0 {
			c.Port = port
		}
	}

	if c.Port == 0 {
		if c.Driver == DriverPgx {
			c.Port = DefaultPostgresPort
		} else {
			c.Port = DefaultSQLServerPort
		}
	}
	if c.Schema == "" {
		if c.Driver == DriverPgx {
			c.Schema = "public"
		} else {
			c.Schema = "dbo"
		}
	}
	if c.ConnectionTimeout <= 0 {
		c.ConnectionTimeout = DefaultTimeout
	}
	if c.TokenScope == "" {
		if c.Driver == DriverPgx {
			c.TokenScope = "https://ossrdbms-aad.database.windows.net/.default"
		} else {
			c.TokenScope = "https://database.windows.net/.default"
		}
	}
	return c, nil
}

// ConnString arma el connection string sin credenciales.
func (c Config) ConnString() string {
	timeout := int(c.ConnectionTimeout / time.Second)

	if c.Driver == DriverPgx {
		parts := []string{
			"host=" + pgValue(c.Server),
			"port=" + strconv.Itoa(c.Port),
			"dbname=" + pgValue(c.Database),
			"sslmode=" + c.sslMode(),
			"connect_timeout=" + strconv.Itoa(timeout),
		}
		if c.User != "" {
			parts = append(parts, "user="+pgValue(c.User))
		}
		if c.AppName != "" {
			parts = append(parts, "application_name="+pgValue(c.AppName))
		}
		return strings.Join(parts, " ")
	}

	q := url.Values{}
	q.Set("database", c.Database)
	q.Set("encrypt", strconv.FormatBool(c.Encrypt))
	q.Set("TrustServerCertificate", strconv.FormatBool(c.TrustServerCertificate))
	q.Set("connection timeout", strconv.Itoa(timeout))
	q.Set("dial timeout", strconv.Itoa(timeout))
	if c.AppName != "" {
		q.Set("app name", c.AppName)
	}
	u := url.URL{
		Scheme:   "sqlserver",
		Host:     net.JoinHostPort(c.Server, strconv.Itoa(c.Port)),
		RawQuery: q.Encode(),
	}
	return u.String()
}

// pgValue entrecomilla un valor keyword/value de libpq cuando hace falta,
// escapando ' y \.
func pgValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n'\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func (c Config) sslMode() string {
	switch {
	case !c.Encrypt:
		return "disable"
	case c.TrustServerCertificate:
		return "require"
	default:
		return "verify-full"
	}
}
