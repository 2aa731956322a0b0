package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Tables holds the DynamoDB table name for each resource.
type Tables struct {
	Courses         string
	Subjects        string
	Chapters        string
	Sections        string
	Assignments     string
	Bundles         string
	Questions       string
	Results         string
	Materials       string
	Tags            string
	AdaptiveContent string
	Sessions        string
}

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion string
	Tables    Tables

	// Secondary index names (shared naming across tables)
	CourseIDIndex     string
	SubjectIDIndex    string
	ChapterIDIndex    string
	AssignmentIDIndex string
	UserIDIndex       string

	// Identity provider
	UserPoolID           string
	UserPoolClientID     string
	UserPoolClientSecret string

	// Object storage
	MediaBucket       string
	UploadURLExpiry   time.Duration
	DownloadURLExpiry time.Duration

	// AI file API
	AIFilesBaseURL string
	AIFilesAPIKey  string

	// Eventing and metrics
	EventBusName     string
	MetricsNamespace string

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// Authentication (local dev server only; API Gateway validates in Lambda)
	JWTSecret string
	JWTIssuer string

	// Logging and features
	LogLevel      string
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "ap-south-1"),

		Tables: Tables{
			Courses:         getEnv("COURSES_TABLE", "lms-courses"),
			Subjects:        getEnv("SUBJECTS_TABLE", "lms-subjects"),
			Chapters:        getEnv("CHAPTERS_TABLE", "lms-chapters"),
			Sections:        getEnv("SECTIONS_TABLE", "lms-sections"),
			Assignments:     getEnv("ASSIGNMENTS_TABLE", "lms-assignments"),
			Bundles:         getEnv("BUNDLES_TABLE", "lms-bundles"),
			Questions:       getEnv("QUESTIONS_TABLE", "lms-questions"),
			Results:         getEnv("RESULTS_TABLE", "lms-results"),
			Materials:       getEnv("MATERIALS_TABLE", "lms-materials"),
			Tags:            getEnv("TAGS_TABLE", "lms-tags"),
			AdaptiveContent: getEnv("ADAPTIVE_CONTENT_TABLE", "lms-adaptive-content"),
			Sessions:        getEnv("SESSIONS_TABLE", "lms-user-sessions"),
		},

		CourseIDIndex:     getEnv("COURSE_ID_INDEX", "courseId-index"),
		SubjectIDIndex:    getEnv("SUBJECT_ID_INDEX", "subjectId-index"),
		ChapterIDIndex:    getEnv("CHAPTER_ID_INDEX", "chapterId-index"),
		AssignmentIDIndex: getEnv("ASSIGNMENT_ID_INDEX", "assignmentId-index"),
		UserIDIndex:       getEnv("USER_ID_INDEX", "userId-index"),

		UserPoolID:           getEnv("USER_POOL_ID", ""),
		UserPoolClientID:     getEnv("USER_POOL_CLIENT_ID", ""),
		UserPoolClientSecret: getEnv("USER_POOL_CLIENT_SECRET", ""),

		MediaBucket:       getEnv("MEDIA_BUCKET", "lms-media"),
		UploadURLExpiry:   time.Duration(getEnvInt("UPLOAD_URL_EXPIRY_MINUTES", 15)) * time.Minute,
		DownloadURLExpiry: time.Duration(getEnvInt("DOWNLOAD_URL_EXPIRY_MINUTES", 60)) * time.Minute,

		AIFilesBaseURL: getEnv("AI_FILES_BASE_URL", ""),
		AIFilesAPIKey:  getEnv("AI_FILES_API_KEY", ""),

		EventBusName:     getEnv("EVENT_BUS_NAME", "lms-events"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "LMS"),

		IsLambda:           getEnvBool("IS_LAMBDA", false),
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "lms-backend"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.UserPoolID == "" || c.UserPoolClientID == "" {
			return fmt.Errorf("USER_POOL_ID and USER_POOL_CLIENT_ID are required in production")
		}
		if c.MediaBucket == "" {
			return fmt.Errorf("MEDIA_BUCKET is required in production")
		}
		if c.EventBusName == "" {
			return fmt.Errorf("EVENT_BUS_NAME is required in production")
		}
	}
	if !c.IsLambda && c.LambdaFunctionName != "" {
		c.IsLambda = true
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
