package main

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/drilathedev/virtual-view-estate/internal/app"
	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/controllers"
	"github.com/drilathedev/virtual-view-estate/internal/middleware"
	"github.com/drilathedev/virtual-view-estate/internal/routes"
	"github.com/drilathedev/virtual-view-estate/internal/services"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
	"github.com/drilathedev/virtual-view-estate/internal/utils/telegram"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize app:", err)
	}
	defer application.Close()

	tgClient := telegram.NewClient(cfg.TelegramBotToken, cfg.TelegramChatID, "")
	if tgClient.Configured() {
		// Token sanity check; a bad token should show up in the boot log, not
		// on the first contact submission.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := tgClient.GetMe(ctx); err != nil {
			utils.Logger.WithError(err).Warn("Telegram bot token check failed; contact relay may not deliver")
		}
		cancel()
	}

	remoteGeocoder := services.NewRemoteGeocoder(cfg.GMapsAPIKey, cfg.NominatimBaseURL, config.AppName)

	listingService := services.NewListingService(application.PropertyRepo, application.Cache)
	propertyService := services.NewPropertyService(application.PropertyRepo, application.Cache)
	featureService := services.NewFeatureService(application.FeatureRepo)
	geocodeService := services.NewGeocodeService(application.PropertyRepo, application.Cache, remoteGeocoder, cfg.AppUrl)
	notifyService := services.NewNotifyService(cfg, tgClient)
	authService := services.NewAuthService(cfg)
	mediaService := services.NewMediaService(cfg)

	healthController := controllers.NewHealthController(application)
	propertyController := controllers.NewPropertyController(listingService, geocodeService)
	contactController := controllers.NewContactController(notifyService, listingService)
	featureController := controllers.NewFeatureController(featureService)
	authController := controllers.NewAuthController(authService)
	adminController := controllers.NewAdminPropertyController(propertyService)
	uploadController := controllers.NewUploadController(mediaService, cfg.MaxUploadBytes)

	router := mux.NewRouter()
	router.Use(middleware.MetricsMiddleware)

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(routes.Metrics, promhttp.Handler()).Methods(http.MethodGet)

	// Map before {id} so "map" is not parsed as a property ID.
	router.HandleFunc(routes.PropertiesMap, propertyController.MapMarkersHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Properties, propertyController.ListPropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, propertyController.GetPropertyHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Features, featureController.ListFeaturesHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.Contact, contactController.SubmitContactHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PropertyInquiry, contactController.SubmitInquiryHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)

	router.PathPrefix(routes.MediaPrefix).Handler(
		http.StripPrefix(routes.MediaPrefix, http.FileServer(http.Dir(cfg.MediaDir))),
	).Methods(http.MethodGet)

	// Admin
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AdminAuthMiddleware(cfg.RSAPublicKey, cfg.IsAdminEmail))

	secured.HandleFunc(routes.AdminProperties, adminController.CreatePropertyHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.AdminPropertyByID, adminController.UpdatePropertyHandler).Methods(http.MethodPatch, http.MethodPut)
	secured.HandleFunc(routes.AdminPropertyByID, adminController.DeletePropertyHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.AdminFeatures, featureController.CreateFeatureHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.AdminFeatureByID, featureController.DeleteFeatureHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.AdminUploads, uploadController.UploadHandler).Methods(http.MethodPost)

	c := cron.New()
	_, cronErr := c.AddFunc("@every 15m", func() {
		geocodeService.BackfillCoordinates(context.Background())
	})
	if cronErr != nil {
		utils.Logger.WithError(cronErr).Fatal("Failed to schedule geocode backfill cron")
	}
	c.Start()

	allowedOrigins := []string{cfg.AppUrl}
	if cfg.LDFlag_CORSAllowAll {
		allowedOrigins = []string{"*"}
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("server failed to start:", err)
	}
}
