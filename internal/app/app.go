package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fintechlabs/payment-service/config"
	"github.com/fintechlabs/payment-service/internal/consumer"
	"github.com/fintechlabs/payment-service/internal/fraud"
	handlers "github.com/fintechlabs/payment-service/internal/handlers"
	"github.com/fintechlabs/payment-service/internal/metrics"
	"github.com/fintechlabs/payment-service/internal/models"
	"github.com/fintechlabs/payment-service/internal/publisher"
	"github.com/fintechlabs/payment-service/internal/repository/posgrest"
	"github.com/fintechlabs/payment-service/internal/service"
	"github.com/fintechlabs/payment-service/internal/subscriber"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type App struct {
	config   *config.Config
	Router   *gin.Engine
	Recorder *consumer.Recorder

	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	cancel    context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Payment{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	paymentRepo := posgrest.New(db)
	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, []string{models.PaymentEventsTopic}, cfg.Kafka.GetRetryConfig())
	fraudClient := fraud.NewClient(cfg.Fraud)
	paymentService := service.NewPaymentService(paymentRepo, fraudClient, a.publisher)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	gin.SetMode(gin.ReleaseMode)
	a.Router = gin.New()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)

	a.Recorder = consumer.NewRecorder()
	a.initSubscribers(a.Recorder)
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	go func() {
		logrus.Infof("Payment service listening on port %s", a.config.APP.PORT)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %s", err.Error())
	}

	a.cancel()
	a.consumer.Close()
	a.publisher.Close()

	logrus.Info("Server exited")
}

func (a *App) initSubscribers(recorder *consumer.Recorder) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := []string{models.PaymentEventsTopic}
	groupID := a.config.Kafka.ConsumerGroup

	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, groupID)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.consumer.Listen(ctx, recorder.HandleEvent)
}
