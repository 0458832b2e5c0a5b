package main

import (
	"fmt"
	"os"

	"larica/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if startErr := jobManager.StartAll(); startErr != nil {
		log.Fatalf("Failed to start jobs: %v", startErr)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		BackendBaseURL:        goDotEnvVariable("BACKEND_BASE_URL"),
		BackendTimeoutSeconds: goDotEnvVariable("BACKEND_TIMEOUT_SECONDS"),
		DispatchScheme:        goDotEnvVariable("DISPATCH_SCHEME"),
		DispatchChannel:       goDotEnvVariable("DISPATCH_CHANNEL"),
		DispatchRouteBaseURL:  goDotEnvVariable("DISPATCH_ROUTE_BASE_URL"),
		DispatchSuggestedFee:  goDotEnvVariable("DISPATCH_SUGGESTED_FEE"),
		WatchedRestaurantID:   goDotEnvVariable("WATCHED_RESTAURANT_ID"),
		BoardRefreshSchedule:  goDotEnvVariable("BOARD_REFRESH_SCHEDULE"),
		DispatchAlertSchedule: goDotEnvVariable("DISPATCH_ALERT_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
