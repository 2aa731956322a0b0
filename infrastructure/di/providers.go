package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awscognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/application/services"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/aifiles"
	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/config"
	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/identity"
	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/messaging/eventbridge"
	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/persistence/dynamodb"
	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/storage"
	"github.com/projectsdatadna/test-series-api-sub001/interfaces/http/rest"
	"github.com/projectsdatadna/test-series-api-sub001/interfaces/http/rest/handlers"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/observability"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig loads the AWS SDK configuration, instrumenting clients
// for X-Ray when tracing is on.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}
	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client.
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideCognitoClient creates a Cognito Identity Provider client.
func ProvideCognitoClient(awsCfg aws.Config) *awscognito.Client {
	return awscognito.NewFromConfig(awsCfg)
}

// ProvideS3Presigner creates an S3 presign client.
func ProvideS3Presigner(awsCfg aws.Config) *awss3.PresignClient {
	return awss3.NewPresignClient(awss3.NewFromConfig(awsCfg))
}

// ProvideEventBridgeClient creates an EventBridge client.
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client.
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideEventBus creates the lifecycle event publisher.
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideIdentityProvider creates the Cognito-backed identity provider.
func ProvideIdentityProvider(client *awscognito.Client, cfg *config.Config, logger *zap.Logger) ports.IdentityProvider {
	return identity.NewCognitoProvider(client, cfg.UserPoolClientID, cfg.UserPoolClientSecret, logger)
}

// ProvideFileStorage creates the S3-backed presigned URL issuer.
func ProvideFileStorage(presigner *awss3.PresignClient, cfg *config.Config, logger *zap.Logger) ports.FileStorage {
	return storage.NewS3Storage(presigner, cfg.MediaBucket, cfg.UploadURLExpiry, cfg.DownloadURLExpiry, logger)
}

// ProvideAIFileClient creates the AI file API client.
func ProvideAIFileClient(cfg *config.Config, logger *zap.Logger) ports.AIFileClient {
	return aifiles.NewClient(cfg.AIFilesBaseURL, cfg.AIFilesAPIKey, logger)
}

// ProvideMetrics creates the CloudWatch metrics recorder. Disabled metrics
// yield a nil recorder, which every caller treats as a no-op.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewMetrics(cfg.MetricsNamespace, client, logger)
}

// ProvideTracer creates the X-Ray tracer.
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(cfg.MetricsNamespace)
}

// Repository providers, one table per resource.

func ProvideCourseRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Course] {
	return dynamodb.NewTable[domain.Course](client, cfg.Tables.Courses, "course", logger)
}

func ProvideSubjectRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Subject] {
	return dynamodb.NewTable[domain.Subject](client, cfg.Tables.Subjects, "subject", logger)
}

func ProvideChapterRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Chapter] {
	return dynamodb.NewTable[domain.Chapter](client, cfg.Tables.Chapters, "chapter", logger)
}

func ProvideSectionRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Section] {
	return dynamodb.NewTable[domain.Section](client, cfg.Tables.Sections, "section", logger)
}

func ProvideAssignmentRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Assignment] {
	return dynamodb.NewTable[domain.Assignment](client, cfg.Tables.Assignments, "assignment", logger)
}

func ProvideBundleRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Bundle] {
	return dynamodb.NewTable[domain.Bundle](client, cfg.Tables.Bundles, "bundle", logger)
}

func ProvideQuestionRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Question] {
	return dynamodb.NewTable[domain.Question](client, cfg.Tables.Questions, "question", logger)
}

func ProvideResultRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Result] {
	return dynamodb.NewTable[domain.Result](client, cfg.Tables.Results, "result", logger)
}

func ProvideMaterialRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Material] {
	return dynamodb.NewTable[domain.Material](client, cfg.Tables.Materials, "material", logger)
}

func ProvideTagRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.Tag] {
	return dynamodb.NewTable[domain.Tag](client, cfg.Tables.Tags, "tag", logger)
}

func ProvideAdaptiveContentRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.AdaptiveContent] {
	return dynamodb.NewTable[domain.AdaptiveContent](client, cfg.Tables.AdaptiveContent, "adaptive content", logger)
}

func ProvideSessionRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.Repository[domain.UserSession] {
	return dynamodb.NewTable[domain.UserSession](client, cfg.Tables.Sessions, "session", logger)
}

// Service providers.

func ProvideCourseService(repo ports.Repository[domain.Course], events ports.EventBus, logger *zap.Logger) *services.CourseService {
	return services.NewCourseService(repo, events, logger)
}

func ProvideSubjectService(repo ports.Repository[domain.Subject], events ports.EventBus, cfg *config.Config, logger *zap.Logger) *services.SubjectService {
	return services.NewSubjectService(repo, events, logger, cfg.CourseIDIndex)
}

func ProvideChapterService(repo ports.Repository[domain.Chapter], events ports.EventBus, cfg *config.Config, logger *zap.Logger) *services.ChapterService {
	return services.NewChapterService(repo, events, logger, cfg.SubjectIDIndex)
}

func ProvideSectionService(repo ports.Repository[domain.Section], events ports.EventBus, cfg *config.Config, logger *zap.Logger) *services.SectionService {
	return services.NewSectionService(repo, events, logger, cfg.ChapterIDIndex)
}

func ProvideAssignmentService(repo ports.Repository[domain.Assignment], events ports.EventBus, cfg *config.Config, logger *zap.Logger) *services.AssignmentService {
	return services.NewAssignmentService(repo, events, logger, cfg.CourseIDIndex)
}

func ProvideBundleService(repo ports.Repository[domain.Bundle], events ports.EventBus, logger *zap.Logger) *services.BundleService {
	return services.NewBundleService(repo, events, logger)
}

func ProvideQuestionService(repo ports.Repository[domain.Question], events ports.EventBus, cfg *config.Config, logger *zap.Logger) *services.QuestionService {
	return services.NewQuestionService(repo, events, logger, cfg.AssignmentIDIndex)
}

func ProvideResultService(repo ports.Repository[domain.Result], questions *services.QuestionService, events ports.EventBus, cfg *config.Config, logger *zap.Logger) *services.ResultService {
	return services.NewResultService(repo, questions, events, logger, cfg.UserIDIndex, cfg.AssignmentIDIndex)
}

func ProvideMaterialService(repo ports.Repository[domain.Material], files ports.FileStorage, aiFiles ports.AIFileClient, events ports.EventBus, cfg *config.Config, logger *zap.Logger) *services.MaterialService {
	return services.NewMaterialService(repo, files, aiFiles, events, logger, cfg.CourseIDIndex)
}

func ProvideTagService(repo ports.Repository[domain.Tag], events ports.EventBus, logger *zap.Logger) *services.TagService {
	return services.NewTagService(repo, events, logger)
}

func ProvideAdaptiveContentService(repo ports.Repository[domain.AdaptiveContent], events ports.EventBus, cfg *config.Config, logger *zap.Logger) *services.AdaptiveContentService {
	return services.NewAdaptiveContentService(repo, events, logger, cfg.CourseIDIndex)
}

func ProvideSessionService(repo ports.Repository[domain.UserSession], cfg *config.Config, logger *zap.Logger) *services.SessionService {
	return services.NewSessionService(repo, logger, cfg.UserIDIndex)
}

func ProvideAuthService(provider ports.IdentityProvider, sessions *services.SessionService, logger *zap.Logger) *services.AuthService {
	return services.NewAuthService(provider, sessions, logger)
}

// ProvideHandlers builds the handler set the router mounts.
func ProvideHandlers(
	course *services.CourseService,
	subject *services.SubjectService,
	chapter *services.ChapterService,
	section *services.SectionService,
	assignment *services.AssignmentService,
	bundle *services.BundleService,
	question *services.QuestionService,
	result *services.ResultService,
	material *services.MaterialService,
	tag *services.TagService,
	adaptive *services.AdaptiveContentService,
	authSvc *services.AuthService,
	sessions *services.SessionService,
	logger *zap.Logger,
) rest.Handlers {
	return rest.Handlers{
		Course:   handlers.NewCourseHandler(course, logger),
		Subject:  handlers.NewSubjectHandler(subject, logger),
		Chapter:  handlers.NewChapterHandler(chapter, logger),
		Section:  handlers.NewSectionHandler(section, logger),
		Assign:   handlers.NewAssignmentHandler(assignment, logger),
		Bundle:   handlers.NewBundleHandler(bundle, logger),
		Question: handlers.NewQuestionHandler(question, logger),
		Result:   handlers.NewResultHandler(result, logger),
		Material: handlers.NewMaterialHandler(material, logger),
		Tag:      handlers.NewTagHandler(tag, logger),
		Adaptive: handlers.NewAdaptiveContentHandler(adaptive, logger),
		Auth:     handlers.NewAuthHandler(authSvc, sessions, logger),
	}
}

// ProvideRouter builds the configured router.
func ProvideRouter(cfg *config.Config, h rest.Handlers, metrics *observability.Metrics, tracer *observability.Tracer, logger *zap.Logger) *rest.Router {
	return rest.NewRouter(cfg, h, metrics, tracer, logger)
}
