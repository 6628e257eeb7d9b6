package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	spot "spot_trading_back"
	"spot_trading_back/pkg/cache"
	"spot_trading_back/pkg/handler"
	"spot_trading_back/pkg/rateclient"
	"spot_trading_back/pkg/repository"
	"spot_trading_back/pkg/service"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	if err := godotenv.Load(); err != nil {
		logrus.Infof("no .env file loaded: %s", err)
	}

	if err := InitConfig(); err != nil {
		logrus.Fatalf("failed to read config: %s", err.Error())
	}

	db, err := repository.NewPostgresDB(repository.Config{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: os.Getenv("DB_PASS"),
		DBName:   viper.GetString("db.dbname"),
		SSLMode:  viper.GetString("db.sslmode"),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to postgres: %s", err.Error())
	}
	logrus.Info("database connected")

	rateCache := cache.NewRateCache(viper.GetDuration("rates.cache_ttl"))
	rates := rateclient.NewClient(viper.GetString("rates.base_url"), os.Getenv("RATES_API_KEY"), rateCache)

	repos := repository.NewRepository(db)
	services := service.NewService(repos, rates)
	handlers := handler.NewHandler(services)

	srv := new(spot.Server)
	go func() {
		if err := srv.Run(os.Getenv("PORT"), handlers.InitRoute()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("failed to run server: %s", err)
		}
	}()
	logrus.Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("server shutdown: %s", err.Error())
	}
}

func InitConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}
