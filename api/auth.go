package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/MaVoid-Team/MaVoid-Portfolio/admin"
	"github.com/MaVoid-Team/MaVoid-Portfolio/errs"
)

// adminTokenTTL bounds how long an unlocked intent stays usable. The
// passkey gate is a convenience gate, but the mutation routes still
// need something better than "the client said the modal succeeded".
const adminTokenTTL = 15 * time.Minute

type adminClaims struct {
	Intent string `json:"intent"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret []byte
}

func newTokenIssuer(secret string) tokenIssuer {
	return tokenIssuer{secret: []byte(secret)}
}

// Issue mints a short-lived token unlocking exactly one intent.
func (t tokenIssuer) Issue(intent admin.Intent) (string, error) {
	now := time.Now()
	claims := adminClaims{
		Intent: string(intent),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token, returning the unlocked intent.
func (t tokenIssuer) Verify(tokenString string) (admin.Intent, error) {
	var claims adminClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrUnauthorized
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errs.ErrUnauthorized
	}
	return admin.Intent(claims.Intent), nil
}

type authMiddleware struct {
	issuer    tokenIssuer
	responder Responder
}

func newAuthMiddleware(issuer tokenIssuer) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		issuer:    issuer,
		responder: NewResponder(logger),
	}
}

// requireAdmin gates mutating routes behind a valid admin token.
func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		intent, err := m.issuer.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithIntent(r.Context(), intent)))
	})
}
