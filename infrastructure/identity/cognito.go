package identity

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
)

// API is the subset of the Cognito client used by the auth endpoints.
type API interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error)
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
	ForgotPassword(ctx context.Context, params *cognitoidentityprovider.ForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cognitoidentityprovider.ConfirmForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmForgotPasswordOutput, error)
	GlobalSignOut(ctx context.Context, params *cognitoidentityprovider.GlobalSignOutInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GlobalSignOutOutput, error)
}

// CognitoProvider implements ports.IdentityProvider against a Cognito user
// pool. All vendor errors flow up untranslated; the handlers map them by
// error code.
type CognitoProvider struct {
	client       API
	clientID     string
	clientSecret string
	logger       *zap.Logger
}

// NewCognitoProvider creates a provider for the given app client.
func NewCognitoProvider(client API, clientID, clientSecret string, logger *zap.Logger) ports.IdentityProvider {
	return &CognitoProvider{
		client:       client,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

// SecretHash computes the SECRET_HASH parameter the user pool requires when
// the app client has a secret: base64(HMAC-SHA256(username + clientID)).
func SecretHash(username, clientID, clientSecret string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (p *CognitoProvider) secretHash(username string) *string {
	if p.clientSecret == "" {
		return nil
	}
	return aws.String(SecretHash(username, p.clientID, p.clientSecret))
}

// SignUp registers a new user and returns the generated user id.
func (p *CognitoProvider) SignUp(ctx context.Context, email, password, name string) (string, error) {
	attrs := []types.AttributeType{
		{Name: aws.String("email"), Value: aws.String(email)},
	}
	if name != "" {
		attrs = append(attrs, types.AttributeType{Name: aws.String("name"), Value: aws.String(name)})
	}

	out, err := p.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:       aws.String(p.clientID),
		Username:       aws.String(email),
		Password:       aws.String(password),
		SecretHash:     p.secretHash(email),
		UserAttributes: attrs,
	})
	if err != nil {
		p.logger.Warn("Sign up failed", zap.String("email", email), zap.Error(err))
		return "", err
	}

	return aws.ToString(out.UserSub), nil
}

// ConfirmSignUp verifies the emailed confirmation code.
func (p *CognitoProvider) ConfirmSignUp(ctx context.Context, email, code string) error {
	_, err := p.client.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		SecretHash:       p.secretHash(email),
	})
	return err
}

// Login performs the password auth flow and returns the issued tokens.
func (p *CognitoProvider) Login(ctx context.Context, email, password string) (*ports.TokenSet, error) {
	params := map[string]string{
		"USERNAME": email,
		"PASSWORD": password,
	}
	if h := p.secretHash(email); h != nil {
		params["SECRET_HASH"] = *h
	}

	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId:       aws.String(p.clientID),
		AuthFlow:       types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: params,
	})
	if err != nil {
		p.logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	return tokenSetFromResult(out.AuthenticationResult), nil
}

// Refresh exchanges a refresh token for fresh access tokens.
func (p *CognitoProvider) Refresh(ctx context.Context, username, refreshToken string) (*ports.TokenSet, error) {
	params := map[string]string{
		"REFRESH_TOKEN": refreshToken,
	}
	if h := p.secretHash(username); h != nil {
		params["SECRET_HASH"] = *h
	}

	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId:       aws.String(p.clientID),
		AuthFlow:       types.AuthFlowTypeRefreshTokenAuth,
		AuthParameters: params,
	})
	if err != nil {
		return nil, err
	}

	ts := tokenSetFromResult(out.AuthenticationResult)
	if ts != nil && ts.RefreshToken == "" {
		// The refresh flow does not re-issue the refresh token
		ts.RefreshToken = refreshToken
	}
	return ts, nil
}

// ForgotPassword starts the reset flow.
func (p *CognitoProvider) ForgotPassword(ctx context.Context, email string) error {
	_, err := p.client.ForgotPassword(ctx, &cognitoidentityprovider.ForgotPasswordInput{
		ClientId:   aws.String(p.clientID),
		Username:   aws.String(email),
		SecretHash: p.secretHash(email),
	})
	return err
}

// ConfirmForgotPassword completes the reset flow with the emailed code.
func (p *CognitoProvider) ConfirmForgotPassword(ctx context.Context, email, code, newPassword string) error {
	_, err := p.client.ConfirmForgotPassword(ctx, &cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
		SecretHash:       p.secretHash(email),
	})
	return err
}

// SignOut revokes every token issued to the user.
func (p *CognitoProvider) SignOut(ctx context.Context, accessToken string) error {
	_, err := p.client.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	return err
}

func tokenSetFromResult(result *types.AuthenticationResultType) *ports.TokenSet {
	if result == nil {
		return nil
	}
	return &ports.TokenSet{
		AccessToken:  aws.ToString(result.AccessToken),
		IDToken:      aws.ToString(result.IdToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    result.ExpiresIn,
		TokenType:    aws.ToString(result.TokenType),
	}
}
