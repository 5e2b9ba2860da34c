// Package credential obtiene access tokens de la cadena de identidad de Azure
// y los expone como el buffer binario del handshake de la base.
package credential

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"clinical-records-api/internal/platform/apperr"
	"clinical-records-api/internal/platform/logger"
)

const (
	// ScopeSQLServer es la audiencia de Azure SQL Database.
	ScopeSQLServer = "https://database.windows.net/.default"
	// ScopePostgres es la audiencia de Azure Database for PostgreSQL.
	ScopePostgres = "https://ossrdbms-aad.database.windows.net/.default"

	DefaultRefreshSkew = 5 * time.Minute
)

// TokenSource es lo que el resto de la app necesita de un proveedor.
type TokenSource interface {
	GetToken(ctx context.Context, scope string) ([]byte, error)
}

type Options struct {
	// Cache reutiliza el token por scope hasta ExpiresOn - RefreshSkew.
	// Apagado por defecto: cada conexión pide un token nuevo.
	Cache       bool
	RefreshSkew time.Duration
	Logger      logger.Logger
}

type Provider struct {
	cred azcore.TokenCredential
	opts Options
	log  logger.Logger
	now  func() time.Time

	mu    sync.Mutex
	cache map[string]azcore.AccessToken
}

func NewProvider(cred azcore.TokenCredential, opts Options) *Provider {
	if opts.RefreshSkew <= 0 {
		opts.RefreshSkew = DefaultRefreshSkew
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{
		cred:  cred,
		opts:  opts,
		log:   log.With(map[string]any{"component": "credential"}),
		now:   time.Now,
		cache: map[string]azcore.AccessToken{},
	}
}

type ChainOptions struct {
	// Interactive agrega el login por navegador al final de la cadena.
	Interactive bool
	TenantID    string
}

// NewChain arma la cadena por defecto: variables de entorno, workload/managed
// identity, Azure CLI/Developer CLI y opcionalmente login interactivo.
func NewChain(opts ChainOptions) (azcore.TokenCredential, error) {
	def, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		TenantID: opts.TenantID,
	})
	if err != nil {
		return nil, apperr.Credential("credential.chain", err)
	}
	if !opts.Interactive {
		return def, nil
	}

	browser, err := azidentity.NewInteractiveBrowserCredential(&azidentity.InteractiveBrowserCredentialOptions{
		TenantID: opts.TenantID,
	})
	if err != nil {
		return nil, apperr.Credential("credential.chain", err)
	}

	chain, err := azidentity.NewChainedTokenCredential([]azcore.TokenCredential{def, browser}, nil)
	if err != nil {
		return nil, apperr.Credential("credential.chain", err)
	}
	return chain, nil
}

// GetToken devuelve el buffer de handshake para el scope pedido.
// No reintenta: cualquier falla sale como error de kind Credential.
func (p *Provider) GetToken(ctx context.Context, scope string) ([]byte, error) {
	tok, err := p.AccessToken(ctx, scope)
	if err != nil {
		return nil, err
	}
	buf, err := EncodeAccessToken(tok.Token)
	if err != nil {
		return nil, apperr.Credential("credential.get_token", err)
	}
	return buf, nil
}

// AccessToken devuelve el token crudo (con su expiración).
func (p *Provider) AccessToken(ctx context.Context, scope string) (azcore.AccessToken, error) {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return azcore.AccessToken{}, apperr.Credential("credential.get_token", errors.New("empty scope"))
	}
	if p.cred == nil {
		return azcore.AccessToken{}, apperr.Credential("credential.get_token", errors.New("no credential source configured"))
	}

	if !p.opts.Cache {
		return p.fetch(ctx, scope)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if tok, ok := p.cache[scope]; ok && p.now().Before(tok.ExpiresOn.Add(-p.opts.RefreshSkew)) {
		return tok, nil
	}

	tok, err := p.fetch(ctx, scope)
	if err != nil {
		delete(p.cache, scope)
		return azcore.AccessToken{}, err
	}
	p.cache[scope] = tok
	return tok, nil
}

// Invalidate descarta el token cacheado de un scope (p.ej. tras un login rechazado).
func (p *Provider) Invalidate(scope string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cache, scope)
}

func (p *Provider) fetch(ctx context.Context, scope string) (azcore.AccessToken, error) {
	start := p.now()
	tok, err := p.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{scope}})
	if err != nil {
		p.log.Warn("token request failed", map[string]any{"scope": scope, "error": err})
		return azcore.AccessToken{}, apperr.Credential("credential.get_token", err)
	}
	if tok.Token == "" {
		return azcore.AccessToken{}, apperr.Credential("credential.get_token", errors.New("identity provider returned an empty token"))
	}

	p.log.Debug("token acquired", map[string]any{
		"scope":      scope,
		"expires_on": tok.ExpiresOn,
		"took_ms":    p.now().Sub(start).Milliseconds(),
	})
	return tok, nil
}
