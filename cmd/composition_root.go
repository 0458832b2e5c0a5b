package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	httpin "larica/internal/adapters/in/http"
	"larica/internal/adapters/out/backendapi"
	"larica/internal/core/application/usecases/commands"
	"larica/internal/core/application/usecases/queries"
	"larica/internal/core/domain/services"
	"larica/internal/jobs"
)

const (
	defaultBoardRefreshSchedule  = "0 * * * * *"
	defaultDispatchAlertSchedule = "*/30 * * * * *"
)

type CompositionRoot struct {
	gateway     *backendapi.Client
	carts       *httpin.CartStore
	composer    services.DispatchComposer
	jobSettings jobs.Settings
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config) (CompositionRoot, error) {
	timeout, err := parseTimeout(configs.BackendTimeoutSeconds)
	if err != nil {
		return CompositionRoot{}, err
	}

	gateway, err := backendapi.NewClient(configs.BackendBaseURL, timeout)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("backend gateway: %w", err)
	}

	composer, err := services.NewDispatchComposer(services.DispatchSettings{
		Scheme:       configs.DispatchScheme,
		Channel:      configs.DispatchChannel,
		RouteBaseURL: configs.DispatchRouteBaseURL,
		SuggestedFee: configs.DispatchSuggestedFee,
	})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("dispatch composer: %w", err)
	}

	jobSettings, err := parseJobSettings(configs)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gateway:     gateway,
		carts:       httpin.NewCartStore(),
		composer:    composer,
		jobSettings: jobSettings,
		logger:      slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}, nil
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.gateway, c.gateway)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetTrackedOrderQueryHandler() queries.GetTrackedOrderQueryHandler {
	return queries.NewGetTrackedOrderQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.carts,
		c.CreateSubmitOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetCatalogQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetTrackedOrderQueryHandler(),
		c.CreateGetRestaurantQueryHandler(),
		c.composer,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.jobSettings,
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetTrackedOrderQueryHandler(),
		c.CreateGetRestaurantQueryHandler(),
		c.composer,
		c.logger,
	)
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("BACKEND_TIMEOUT_SECONDS: %w", err)
	}
	return time.Duration(seconds) * time.Second, nil
}

func parseJobSettings(configs Config) (jobs.Settings, error) {
	settings := jobs.Settings{
		BoardRefreshSchedule:  configs.BoardRefreshSchedule,
		DispatchAlertSchedule: configs.DispatchAlertSchedule,
	}
	if settings.BoardRefreshSchedule == "" {
		settings.BoardRefreshSchedule = defaultBoardRefreshSchedule
	}
	if settings.DispatchAlertSchedule == "" {
		settings.DispatchAlertSchedule = defaultDispatchAlertSchedule
	}

	if configs.WatchedRestaurantID == "" {
		return settings, nil
	}
	id, err := strconv.ParseInt(configs.WatchedRestaurantID, 10, 64)
	if err != nil {
		return jobs.Settings{}, fmt.Errorf("WATCHED_RESTAURANT_ID: %w", err)
	}
	settings.WatchedRestaurantID = id
	return settings, nil
}
