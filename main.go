package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"aging_curve/config"
	"aging_curve/db"
	_ "aging_curve/docs" // 导入 swagger 文档
	"aging_curve/handlers"
	"aging_curve/logger"
	"aging_curve/repository"
	"aging_curve/scheduler"
	"aging_curve/services"
	"aging_curve/utils"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aging_curve",
		Short:         "노화 곡선 분석 API 서버",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "配置文件路径")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "启动 HTTP 服务",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "创建或更新数据表",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "extract <file>",
			Short: "从模型原始输出文件抽取分析结果并打印 JSON",
			Args:  cobra.ExactArgs(1),
			RunE:  runExtract,
		},
	)
	return root
}

// setup 加载配置、初始化日志和数据库
func setup() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Printf("init logger failed: %v", err)
		return nil, err
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	if err := db.InitWithConfig(cfg); err != nil {
		logger.Error("初始化数据库失败", "driver", cfg.DB.Driver, "error", err)
		return nil, err
	}
	logger.Info("数据库连接成功",
		"driver", cfg.DB.Driver,
		"max_open_conns", cfg.DB.MaxOpenConns,
		"max_idle_conns", cfg.DB.MaxIdleConns,
		"conn_max_lifetime", cfg.DB.ConnMaxLifetime)
	return cfg, nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(cmd.Context(), db.DB, db.Driver); err != nil {
		logger.Error("数据表迁移失败", "error", err)
		return err
	}
	logger.Info("数据表迁移完成", "driver", db.Driver)
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	result, err := services.ExtractAnalysis(string(raw))
	if err != nil {
		return err
	}
	if empty := result.EmptyFields(); len(empty) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "empty fields: %v\n", empty)
	}
	return utils.WriteIndentedJSON(cmd.OutOrStdout(), result)
}

// newGenerator 按 provider 创建模型后端
func newGenerator(ctx context.Context, cfg *config.Config) (services.Generator, error) {
	keys := services.NewKeyRotator(cfg.LLM.APIKeys)
	if keys.Len() == 0 {
		logger.Warn("未配置 LLM API Key", "provider", cfg.LLM.Provider)
	}

	switch cfg.LLM.Provider {
	case "gemini":
		return services.NewGeminiGenerator(ctx, keys, cfg.LLM.BaseURL)
	default:
		timeout := time.Duration(cfg.LLM.TimeoutSec) * time.Second
		return services.NewOpenAIGenerator(cfg.LLM.BaseURL, keys, timeout), nil
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, db.DB, db.Driver); err != nil {
			logger.Error("数据表迁移失败", "error", err)
			return err
		}
	}

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		logger.Error("初始化模型客户端失败", "provider", cfg.LLM.Provider, "error", err)
		return err
	}
	requester := services.NewNarrativeRequester(gen, services.RequesterConfig{
		Model:         cfg.LLM.Model,
		FallbackModel: cfg.LLM.FallbackModel,
		MaxTokens:     cfg.LLM.MaxOutputTokens,
		Structured:    cfg.LLM.StructuredOutput,
		CountTokens:   cfg.LLM.CountTokens,
		CallTimeout:   time.Duration(cfg.LLM.TimeoutSec) * time.Second,
	})

	results := repository.NewResultRepository(db.DB, db.Driver)
	mainRepo := repository.NewMainRepository(db.DB, db.Driver)

	h := handlers.NewHandler(
		services.NewAnalysisService(results, requester),
		services.NewResultService(results),
		services.NewMainService(mainRepo),
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handlers.NewRouter(h, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("服务器启动", "address", cfg.Server.Addr, "llm_provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
		logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 数据库健康检查
	g.Go(func() error {
		return scheduler.NewScheduler(cfg, mainRepo, db.DB.Stats).Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("正在关闭服务器")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("服务器异常退出", "error", err)
		return err
	}
	logger.Info("服务器已关闭")
	return nil
}
