package domain

// UserSession tracks an issued refresh token so it can be listed and revoked.
// Sessions are hard-deleted on logout, unlike content records.
type UserSession struct {
	Record
	UserID       string `json:"userId" dynamodbav:"userId"`
	RefreshToken string `json:"-" dynamodbav:"refreshToken"`
	DeviceInfo   string `json:"deviceInfo,omitempty" dynamodbav:"deviceInfo,omitempty"`
	IPAddress    string `json:"ipAddress,omitempty" dynamodbav:"ipAddress,omitempty"`
	ExpiresAt    string `json:"expiresAt" dynamodbav:"expiresAt"`
}
