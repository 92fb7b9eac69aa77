package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/trade-alerts/pkg/alerts"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/config"
	"liyu1981.xyz/trade-alerts/pkg/db"
	alertsGrpc "liyu1981.xyz/trade-alerts/pkg/grpc"
	alertsHttp "liyu1981.xyz/trade-alerts/pkg/http"
	"liyu1981.xyz/trade-alerts/pkg/notify"
	"liyu1981.xyz/trade-alerts/pkg/postgrest"
	"liyu1981.xyz/trade-alerts/pkg/pricefeed"
	"liyu1981.xyz/trade-alerts/pkg/scheduler"
)

func openStore(ctx context.Context, cfg *config.Config) alerts.IAlertStore {
	switch cfg.StoreType {
	case config.StoreTypePostgrest:
		client, err := postgrest.NewClient(postgrest.Config{URL: cfg.Supabase.URL, Key: cfg.Supabase.Key})
		if err != nil {
			log.Fatalf("Invalid supabase settings: %v", err)
		}
		return postgrest.NewAlertStore(client)
	case config.StoreTypeMemory:
		store := db.NewAlertStore(db.GetInstance(db.UseMemorySqliteDialector()))
		if err := store.EnsureTable(ctx, cfg.Table); err != nil {
			log.Fatalf("Failed to create alerts table: %v", err)
		}
		return store
	default:
		store := db.NewAlertStore(db.GetInstance(db.UseSqliteFileDialector(cfg.DbPath)))
		if err := store.EnsureTable(ctx, cfg.Table); err != nil {
			log.Fatalf("Failed to create alerts table: %v", err)
		}
		return store
	}
}

func openNotifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) alerts.INotifier {
	notifiers := notify.Fanout{notify.LogNotifier{}}
	if cfg.Redis.Addr == "" {
		return notifiers
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
	}
	logger.Info("Publishing triggered alerts to redis",
		zap.String("addr", cfg.Redis.Addr), zap.String("channel", cfg.Redis.Channel))
	return append(notifiers, notify.NewRedisNotifier(rdb, cfg.Redis.Channel))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, copy .env.example to .env first if in development")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := common.GetLogger()

	var quoteLimiter *rate.Limiter
	if cfg.Quote.Rate > 0 {
		quoteLimiter = rate.NewLimiter(rate.Limit(cfg.Quote.Rate), 1)
	}
	feed, err := pricefeed.NewClient(pricefeed.Config{
		Endpoint: cfg.Quote.Endpoint,
		APIKey:   cfg.Quote.APIKey,
		Timeout:  cfg.Quote.Timeout,
		Limiter:  quoteLimiter,
	})
	if err != nil {
		log.Fatalf("Invalid quote API settings: %v", err)
	}

	alertsCore := alerts.Alerts{
		Feed:     feed,
		Store:    openStore(ctx, cfg),
		Notifier: openNotifier(ctx, cfg, logger),
		Table:    cfg.Table,
		Options:  cfg.AlertsOptions(),
	}
	alertsCore.WithServices(alerts.ServiceOpts{
		Evaluator: alertsCore.GetIEvaluator(),
		Manager:   alertsCore.GetIManager(),
	})

	sched, err := scheduler.New(alertsCore.Evaluator, cfg.Evaluator.Schedule, cfg.Evaluator.PassTimeout)
	if err != nil {
		log.Fatal(err)
	}
	sched.Start(ctx)
	logger.Info("Evaluator scheduled",
		zap.String("store", cfg.StoreType),
		zap.String("schedule", cfg.Evaluator.Schedule),
		zap.Duration("pass_timeout", cfg.Evaluator.PassTimeout),
	)

	defaultLimiter := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.Server.DefaultRate, cfg.Server.DefaultBurst))

	if grpcHostPort := cfg.Server.GrpcHostPort; grpcHostPort != "" {
		go func() {
			alertServer := alertsGrpc.AlertServer{
				Alerts:           &alertsCore,
				RateLimiterStore: alerts.NewRateLimiterStore(rate.Limit(cfg.Server.DefaultRate), cfg.Server.DefaultBurst),
			}
			interceptor := alertServer.CreateRateLimitInterceptor([]string{
				alertsGrpc.MethodAddAlert,
				alertsGrpc.MethodListUserAlerts,
			})
			s := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
			alertsGrpc.RegisterAlertServiceServer(s, &alertServer)
			logger.Info("gRPC server created with:", defaultLimiter)

			listener, err := net.Listen("tcp", grpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			go func() {
				<-ctx.Done()
				s.GracefulStop()
			}()

			logger.Info("start gRPC server on " + grpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	rs := &alertsHttp.RestfulServer{
		Server:           gin.Default(),
		Alerts:           &alertsCore,
		RateLimiterStore: alerts.NewRateLimiterStore(rate.Limit(cfg.Server.DefaultRate), cfg.Server.DefaultBurst),
	}
	rs.Setup()
	logger.Info("http server created with:", defaultLimiter)

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down, waiting for running pass")
		<-sched.Stop().Done()
		_ = logger.Sync()
		os.Exit(0)
	}()

	logger.Info("Starting HTTP server on: " + cfg.Server.HttpHostPort)
	if err := rs.Server.Run(cfg.Server.HttpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
