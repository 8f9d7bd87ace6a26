package main

import (
	"cinema-web/config"
	authHandler "cinema-web/internal/module/auth/handler"
	authRepositories "cinema-web/internal/module/auth/repositories"
	authUsecases "cinema-web/internal/module/auth/usecases"
	bookingHandler "cinema-web/internal/module/booking/handler"
	bookingRepositories "cinema-web/internal/module/booking/repositories"
	bookingUsecases "cinema-web/internal/module/booking/usecases"
	movieHandler "cinema-web/internal/module/movie/handler"
	movieRepositories "cinema-web/internal/module/movie/repositories"
	movieUsecases "cinema-web/internal/module/movie/usecases"
	paymentHandler "cinema-web/internal/module/payment/handler"
	paymentRepositories "cinema-web/internal/module/payment/repositories"
	paymentUsecases "cinema-web/internal/module/payment/usecases"
	"cinema-web/internal/pkg/api"
	"cinema-web/internal/pkg/http"
	"cinema-web/internal/pkg/httpclient"
	"cinema-web/internal/pkg/lock"
	log_internal "cinema-web/internal/pkg/log"
	"cinema-web/internal/pkg/messagestream"
	"cinema-web/internal/pkg/middleware"
	"cinema-web/internal/pkg/redis"
	"cinema-web/internal/pkg/session"
	router "cinema-web/internal/route"
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)

	for _, router := range messageRouters {
		if err := router.Close(); err != nil {
			log.Printf("error close message router: %v", err)
		}
	}
	if cfg.APM.Enabled {
		apm.DefaultTracer.Flush(nil)
	}
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLogger := otelzap.L()

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	backend := api.New(cfg.Backend.BaseURL, httpClient, logger)

	ctx := context.Background()

	// init session store and checkout lock, in memory without redis
	var (
		store  session.Store
		locker lock.Locker
	)
	if cfg.Redis.Host != "" {
		redisClient := redis.SetupClient(&cfg.Redis)
		store = session.NewRedisStore(redisClient, cfg.Session.TTL)
		locker = lock.NewRedsync(redisClient, cfg.Booking.CheckoutLockTTL)
	} else {
		logger.Warn(ctx, "redis host not set, sessions are kept in memory")
		store = session.NewMemoryStore()
		locker = lock.NewLocal()
	}
	sessions := session.NewManager(store, logger, &cfg.Session, cfg.HttpServer.CookieSecure)

	// init message stream
	stream := messagestream.New(&cfg.MessageStream)

	// Init Publisher and Subscriber
	publisher, subscriber, err := stream.Open()
	if err != nil {
		logger.Error(ctx, "Failed to open message stream", err)
		log.Fatal(err)
	}

	authRepo := authRepositories.New(backend, logger)
	movieRepo := movieRepositories.New(backend, logger)
	bookingRepo := bookingRepositories.New(backend, logger)
	paymentRepo := paymentRepositories.New(backend, logger)

	authUsecase := authUsecases.New(authRepo, logger)
	movieUsecase := movieUsecases.New(movieRepo, logger)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, locker, publisher, cfg.Booking.UnitPrice)
	paymentUsecase := paymentUsecases.New(paymentRepo, logger)

	middleware := middleware.Middleware{
		Log:  otelLogger,
		Repo: authRepo,
	}

	validator := validator.New()
	handlers := router.Handlers{
		Auth: &authHandler.AuthHandler{
			Log:       otelLogger,
			Validator: validator,
			Usecase:   authUsecase,
		},
		Movie: &movieHandler.MovieHandler{
			Log:       otelLogger,
			Validator: validator,
			Usecase:   movieUsecase,
		},
		Booking: &bookingHandler.BookingHandler{
			Log:       otelLogger,
			Validator: validator,
			Usecase:   bookingUsecase,
			Publish:   publisher,
		},
		Payment: &paymentHandler.PaymentHandler{
			Log:     otelLogger,
			Usecase: paymentUsecase,
		},
	}

	var messageRouters []*message.Router

	for _, topic := range []string{bookingUsecases.TopicCheckoutStarted, bookingUsecases.TopicCheckoutAbandoned} {
		checkoutRouter, err := messagestream.NewRouter(publisher, bookingUsecases.TopicPoisoned, topic+"_handler", topic, subscriber, handlers.Booking.ConsumeCheckoutEvent)
		if err != nil {
			logger.Error(ctx, "Failed to create "+topic+" router", err)
			continue
		}
		messageRouters = append(messageRouters, checkoutRouter)
	}

	serverHttp := http.SetupHttpEngine(cfg, otelLogger)

	r := router.Initialize(serverHttp, &middleware, sessions, handlers)

	return r, messageRouters

}
