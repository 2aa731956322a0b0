package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "lms-courses", cfg.Tables.Courses)
	assert.Equal(t, "lms-user-sessions", cfg.Tables.Sessions)
	assert.Equal(t, "courseId-index", cfg.CourseIDIndex)
	assert.Equal(t, 15*time.Minute, cfg.UploadURLExpiry)
	assert.Equal(t, time.Hour, cfg.DownloadURLExpiry)
	assert.Equal(t, "lms-events", cfg.EventBusName)
	assert.Equal(t, "lms-backend", cfg.JWTIssuer)
	assert.True(t, cfg.EnableCORS)
	assert.False(t, cfg.EnableMetrics)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("COURSES_TABLE", "alt-courses")
	t.Setenv("UPLOAD_URL_EXPIRY_MINUTES", "5")
	t.Setenv("ENABLE_METRICS", "true")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "alt-courses", cfg.Tables.Courses)
	assert.Equal(t, 5*time.Minute, cfg.UploadURLExpiry)
	assert.True(t, cfg.EnableMetrics)
	assert.False(t, cfg.EnableCORS)
}

func TestLoadConfig_ProductionRequiresUserPool(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "USER_POOL_ID")
}

func TestLoadConfig_ProductionComplete(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("USER_POOL_ID", "ap-south-1_abc")
	t.Setenv("USER_POOL_CLIENT_ID", "client-1")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_LambdaDetectedFromFunctionName(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "lms-api")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.IsLambda)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG", "yes")
	assert.True(t, getEnvBool("FLAG", false))

	t.Setenv("FLAG", "0")
	assert.False(t, getEnvBool("FLAG", true))

	assert.True(t, getEnvBool("UNSET_FLAG", true))
}
