package visit

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohanthewiz/serr"
)

const (
	// TokenIssuer identifies the application that issued the view token
	TokenIssuer = "eduhub"

	// MinSecretLength is the minimum acceptable length for the signing key
	MinSecretLength = 32
)

// ViewClaims binds a token to one mounted view.
type ViewClaims struct {
	jwt.RegisteredClaims
	ViewID string `json:"view_id"`
}

// tokens signs and checks view tokens with one HMAC key.
// Tokens carry no expiry: a view lives as long as it keeps being used
// and the registry sweeps idle ones.
type tokens struct {
	secret []byte
}

func newTokens(secret string) (*tokens, error) {
	if len(secret) < MinSecretLength {
		return nil, serr.New("view token secret must be at least 32 characters")
	}
	return &tokens{secret: []byte(secret)}, nil
}

// issue creates a signed token for viewID
func (t *tokens) issue(viewID string, now time.Time) (string, error) {
	claims := ViewClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   TokenIssuer,
			Subject:  viewID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		ViewID: viewID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", serr.Wrap(err, "failed to sign view token")
	}
	return signed, nil
}

// verify parses tokenString and checks it was issued for viewID
func (t *tokens) verify(tokenString, viewID string) error {
	token, err := jwt.ParseWithClaims(tokenString, &ViewClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serr.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithIssuer(TokenIssuer))
	if err != nil {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*ViewClaims)
	if !ok || !token.Valid || claims.ViewID != viewID {
		return ErrInvalidToken
	}
	return nil
}
