//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/config"
	"github.com/projectsdatadna/test-series-api-sub001/interfaces/http/rest"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Router  *rest.Router
	Metrics *observability.Metrics
	Tracer  *observability.Tracer
}

// SuperSet is the main provider set containing all providers.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideCognitoClient,
	ProvideS3Presigner,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideEventBus,
	ProvideIdentityProvider,
	ProvideFileStorage,
	ProvideAIFileClient,
	ProvideMetrics,
	ProvideTracer,
	ProvideCourseRepository,
	ProvideSubjectRepository,
	ProvideChapterRepository,
	ProvideSectionRepository,
	ProvideAssignmentRepository,
	ProvideBundleRepository,
	ProvideQuestionRepository,
	ProvideResultRepository,
	ProvideMaterialRepository,
	ProvideTagRepository,
	ProvideAdaptiveContentRepository,
	ProvideSessionRepository,
	ProvideCourseService,
	ProvideSubjectService,
	ProvideChapterService,
	ProvideSectionService,
	ProvideAssignmentService,
	ProvideBundleService,
	ProvideQuestionService,
	ProvideResultService,
	ProvideMaterialService,
	ProvideTagService,
	ProvideAdaptiveContentService,
	ProvideSessionService,
	ProvideAuthService,
	ProvideHandlers,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
