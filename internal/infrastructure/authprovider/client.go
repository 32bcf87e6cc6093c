// Package authprovider implementa el puerto SessionExchanger contra el
// servicio de autenticación hospedado. El protocolo de redirect queda del
// lado del proveedor; aquí solo se canjea el session ID de un solo uso
// (header X-Session-ID) por el perfil del usuario y su session token.
package authprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tu-usuario/scrapmaster-api/internal/application/auth"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa SessionExchanger.
var _ auth.SessionExchanger = (*Client)(nil)

// Client adaptador REST del proveedor de autenticación hospedado.
// Usa net/http de la librería estándar; el proveedor no publica SDK.
type Client struct {
	sessionURL string
	httpClient *http.Client
}

// NewClient construye el adaptador. sessionURL es el endpoint de intercambio
// (p.ej. https://<provider>/auth/v1/env/oauth/session-data).
func NewClient(sessionURL string) *Client {
	return &Client{
		sessionURL: sessionURL,
		httpClient: &http.Client{
			// Timeout de red de 15 s; el request hereda además el deadline del ctx.
			Timeout: 15 * time.Second,
		},
	}
}

// ExchangeSession canjea el session ID por el perfil del usuario.
// Respuesta no-200 → domain.ErrUnauthenticated (session ID inválido o
// vencido); fallo de red o JSON malformado → domain.ErrExternalService.
// Sin reintentos: el fallo es terminal por petición.
func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (*auth.ProviderProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sessionURL, nil)
	if err != nil {
		return nil, fmt.Errorf("authprovider: crear request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrUnauthenticated
	}

	var profile auth.ProviderProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: decodificar perfil: %v", domain.ErrExternalService, err)
	}
	if profile.Email == "" || profile.SessionToken == "" {
		return nil, fmt.Errorf("%w: perfil incompleto", domain.ErrExternalService)
	}
	return &profile, nil
}
