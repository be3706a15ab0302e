package middleware

import (
	"net/http"

	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const principalKey = "principal"

type principalResolver interface {
	Resolve(r *http.Request) (*domain.Principal, error)
}

// Auth rejects requests without a valid bearer token with 401 and stores
// the resolved principal for handlers.
func Auth(resolver principalResolver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		p, err := resolver.Resolve(c.Request)
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{
				"error": "unauthorized",
				"kind":  "unauthorized",
			})
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// Principal returns the principal stored by Auth, or nil.
func Principal(c *ginext.Context) *domain.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}

// WithPrincipal stores p as if Auth had resolved it.
func WithPrincipal(c *ginext.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}
