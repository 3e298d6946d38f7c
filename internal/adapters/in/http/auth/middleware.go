package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Context keys for the credential a middleware attached to the request.
const (
	customerContextKey = "auth.customer"
	providerContextKey = "auth.provider"
	driverContextKey   = "auth.driver"
)

// RequireCustomer rejects requests without a valid customer token and
// attaches the customer credential to the request context.
func (s *TokenService) RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		credential, err := s.ParseCustomer(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(customerContextKey, credential)
		return next(c)
	}
}

// RequireProvider rejects requests without a valid provider token and
// attaches the provider credential to the request context.
func (s *TokenService) RequireProvider(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		credential, err := s.ParseProvider(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(providerContextKey, credential)
		return next(c)
	}
}

// RequireDriver rejects requests without a valid driver token and attaches
// the driver credential to the request context.
func (s *TokenService) RequireDriver(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		credential, err := s.ParseDriver(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(driverContextKey, credential)
		return next(c)
	}
}

// CustomerFromContext returns the credential attached by RequireCustomer.
func CustomerFromContext(c echo.Context) (CustomerCredential, bool) {
	credential, ok := c.Get(customerContextKey).(CustomerCredential)
	return credential, ok
}

// ProviderFromContext returns the credential attached by RequireProvider.
func ProviderFromContext(c echo.Context) (ProviderCredential, bool) {
	credential, ok := c.Get(providerContextKey).(ProviderCredential)
	return credential, ok
}

// DriverFromContext returns the credential attached by RequireDriver.
func DriverFromContext(c echo.Context) (DriverCredential, bool) {
	credential, ok := c.Get(driverContextKey).(DriverCredential)
	return credential, ok
}

// OperatorGuard protects back-office endpoints with a static API key.
// Operators are internal staff; full operator accounts live outside this
// service.
type OperatorGuard struct {
	apiKey string
}

// NewOperatorGuard creates a guard around the configured operator key.
func NewOperatorGuard(apiKey string) *OperatorGuard {
	return &OperatorGuard{apiKey: apiKey}
}

// Require rejects requests whose X-Api-Key header does not match.
func (g *OperatorGuard) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if g.apiKey == "" || c.Request().Header.Get("X-Api-Key") != g.apiKey {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid api key")
		}
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return token, nil
}
