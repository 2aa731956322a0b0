package ports

import "context"

// TokenSet is the credential bundle returned by the identity provider after
// a successful login or refresh.
type TokenSet struct {
	AccessToken  string `json:"accessToken"`
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int32  `json:"expiresIn"`
	TokenType    string `json:"tokenType,omitempty"`
}

// IdentityProvider wraps the managed user-pool operations the auth endpoints
// expose. Vendor errors flow up untranslated; the response layer maps their
// error codes to HTTP statuses.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, name string) (userID string, err error)
	ConfirmSignUp(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (*TokenSet, error)
	Refresh(ctx context.Context, username, refreshToken string) (*TokenSet, error)
	ForgotPassword(ctx context.Context, email string) error
	ConfirmForgotPassword(ctx context.Context, email, code, newPassword string) error
	SignOut(ctx context.Context, accessToken string) error
}
