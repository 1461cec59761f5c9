package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/techcsc21/trade4u-sub008/internal/app/engine"
	marketrepo "github.com/techcsc21/trade4u-sub008/internal/infrastructure/postgresql/market"
	walletrepo "github.com/techcsc21/trade4u-sub008/internal/infrastructure/postgresql/wallet"
	candlerepo "github.com/techcsc21/trade4u-sub008/internal/infrastructure/questdb/candle"
	orderrepo "github.com/techcsc21/trade4u-sub008/internal/infrastructure/questdb/order"
	bookrepo "github.com/techcsc21/trade4u-sub008/internal/infrastructure/questdb/orderbook"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/broadcast"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/candle"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/integrity"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/matching"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/orderintake"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/settlement"
	"github.com/techcsc21/trade4u-sub008/pkg/config"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
	"github.com/techcsc21/trade4u-sub008/pkg/postgresql"
	"github.com/techcsc21/trade4u-sub008/pkg/questdb"
	"github.com/techcsc21/trade4u-sub008/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	config.MustLoad(cfg)

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	redisConfig := redis.DefaultConfig()
	redisConfig.Addrs = strings.Split(cfg.RedisConfig.Addrs, ",")
	redisConfig.Password = cfg.RedisConfig.Password
	redisConfig.Username = cfg.RedisConfig.Username
	redisConfig.DB = cfg.RedisConfig.DB
	rclient := redis.NewClient(log, redisConfig)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.NewField("action", "connect_redis"))
		return
	}

	store, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		log.Error(err, logger.NewField("action", "connect_questdb"))
		return
	}
	defer store.Close()

	pg, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Error(err, logger.NewField("action", "connect_postgres"))
		return
	}
	defer pg.Close()

	orders := orderrepo.NewRepository(store)
	books := bookrepo.NewRepository(store)
	candles := candlerepo.NewRepository(store)
	wallets := walletrepo.NewRepository(pg)
	markets := marketrepo.NewRepository(pg)
	registry := marketrepo.NewRegistry(markets, cfg.EngineConfig.DefaultPrecision, log)

	settler := settlement.NewUsecase(wallets, log)
	matcher := matching.NewUsecase(registry, settler, log)
	candleUsecase := candle.NewUsecase(candles, log)
	integrityUsecase := integrity.NewUsecase(orders, books, wallets, registry, log)
	broadcaster := broadcast.NewUsecase(rclient, log)
	intake := orderintake.NewReader(cfg.KafkaConfig, log)

	core, err := engine.New(ctx, engine.Deps{
		Config:      cfg.EngineConfig,
		Orders:      orders,
		Books:       books,
		Candles:     candleUsecase,
		CandleRepo:  candles,
		Wallets:     wallets,
		Registry:    registry,
		Markets:     markets,
		Matcher:     matcher,
		Integrity:   integrityUsecase,
		Broadcaster: broadcaster,
		Intake:      intake,
		Store:       store,
		Logger:      log,
	})
	if err != nil {
		log.Error(err, logger.NewField("action", "init_engine"))
		return
	}

	runDone := make(chan error, 1)
	go func() {
		runDone <- core.Run(ctx)
	}()

	log.Info("trading core started")

	sig := <-sigChan
	log.Info("received shutdown signal", logger.NewField("signal", sig.String()))

	cancel()
	if err := <-runDone; err != nil {
		log.Error(err, logger.NewField("action", "stop_engine"))
	}

	if err := rclient.Disconnect(context.Background()); err != nil {
		log.Error(err, logger.NewField("action", "close_redis_client"))
	}
	_ = log.Sync()
}
