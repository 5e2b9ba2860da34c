package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"clinical-records-api/internal/platform/apperr"
	"clinical-records-api/internal/platform/credential"
	"clinical-records-api/internal/platform/logger"
)

// Factory entrega conexiones nuevas, cada una autenticada con un token recién
// obtenido. No hay pool: cada Acquire es un handshake completo.
type Factory struct {
	cfg     Config
	tokens  credential.TokenSource
	open    Opener
	dialect dialect
	log     logger.Logger
	now     func() time.Time
}

type Option func(*Factory)

// WithOpener reemplaza el driver (tests, drivers alternativos).
func WithOpener(o Opener) Option {
	return func(f *Factory) { f.open = o }
}

func WithLogger(l logger.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.log = l
		}
	}
}

func NewFactory(cfg Config, tokens credential.TokenSource, opts ...Option) (*Factory, error) {
	cfg, err := cfg.WithDefaults()
	if err != nil {
		return nil, err
	}
	if tokens == nil {
		return nil, errors.New("sqldb: nil token source")
	}

	f := &Factory{
		cfg:     cfg,
		tokens:  tokens,
		dialect: dialectFor(cfg.Driver),
		log:     logger.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.open == nil {
		o, err := openerFor(cfg.Driver)
		if err != nil {
			return nil, err
		}
		f.open = o
	}
	f.log = f.log.With(map[string]any{"component": "sqldb", "driver": cfg.Driver})
	return f, nil
}

func (f *Factory) Config() Config {
	return f.cfg
}

// Acquire obtiene el token, abre una conexión física dentro del timeout
// configurado y la devuelve fijada. El caller debe cerrarla en todo camino.
// Si falla el token no se crea ningún handle.
func (f *Factory) Acquire(ctx context.Context) (*Conn, error) {
	const op = "sqldb.acquire"
	id := uuid.NewString()
	start := f.now()
	log := f.log.With(map[string]any{"conn_id": id})

	token, err := f.tokens.GetToken(ctx, f.cfg.TokenScope)
	if err != nil {
		log.Warn("token acquisition failed", map[string]any{"error": err})
		return nil, apperr.Connection(op, err)
	}

	db, err := f.open(ctx, f.cfg, token)
	if err != nil {
		log.Warn("driver setup failed", map[string]any{"error": err})
		return nil, apperr.Connection(op, err)
	}
	db.SetMaxOpenConns(1)

	cctx, cancel := context.WithTimeout(ctx, f.cfg.ConnectionTimeout)
	defer cancel()

	conn, err := db.Conn(cctx)
	if err != nil {
		_ = db.Close()
		log.Warn("handshake failed", map[string]any{"error": err, "server": f.cfg.Server})
		return nil, apperr.Connection(op, err)
	}
	// Sin idle: al liberar la conexión se cierra la física.
	db.SetMaxIdleConns(0)

	log.Debug("connection acquired", map[string]any{"took_ms": f.now().Sub(start).Milliseconds()})
	return &Conn{id: id, conn: conn, db: db, log: log, opened: start, now: f.now}, nil
}

// Ping adquiere, hace ping y libera. Lo usa el health check.
func (f *Factory) Ping(ctx context.Context) error {
	c, err := f.Acquire(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.conn.PingContext(ctx); err != nil {
		return apperr.Connection("sqldb.ping", err)
	}
	return nil
}

// Conn es una conexión adquirida. Close es idempotente.
type Conn struct {
	id     string
	conn   *sql.Conn
	db     *sql.DB
	log    logger.Logger
	opened time.Time
	now    func() time.Time

	once sync.Once
	err  error
}

func (c *Conn) ID() string { return c.id }

func (c *Conn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.conn.QueryContext(ctx, query, args...)
}

func (c *Conn) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return c.conn.QueryRowContext(ctx, query, args...)
}

func (c *Conn) Close() error {
	c.once.Do(func() {
		err := c.conn.Close()
		if dbErr := c.db.Close(); err == nil {
			err = dbErr
		}
		c.err = err
		c.log.Debug("connection released", map[string]any{"held_ms": c.now().Sub(c.opened).Milliseconds()})
	})
	return c.err
}
