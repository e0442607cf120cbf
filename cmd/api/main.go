// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/config"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/events"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/gateway"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/handler"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/llm"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/middleware"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/rag"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/service"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/store"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/logger"
	"github.com/Pablomoreiragarcia/ragflow-multimodal/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "ragflow-multimodal", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to PostgreSQL and migrate the schema
	db, dbCleanup, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}
	defer dbCleanup()

	docStore := store.NewDocumentStore(db)
	convStore := store.NewConversationStore(db)

	// Connect to Qdrant
	vectorSearch, err := gateway.NewVectorSearch(cfg.QdrantHost, cfg.QdrantPort,
		gateway.CollectionTarget{Name: cfg.TextCollection, Dimensions: cfg.TextDimensions},
		gateway.CollectionTarget{Name: cfg.ImageCollection, Dimensions: cfg.ImageDimensions},
	)
	if err != nil {
		log.Error("failed to connect to Qdrant", zap.Error(err))
		os.Exit(1)
	}
	defer vectorSearch.Close()
	if cfg.EnsureCollections {
		if err := vectorSearch.EnsureCollections(ctx); err != nil {
			log.Error("failed to ensure Qdrant collections", zap.Error(err))
			os.Exit(1)
		}
	}

	// Connect to MinIO
	blobStore, err := gateway.NewBlobStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioSecure)
	if err != nil {
		log.Error("failed to connect to blob store", zap.Error(err))
		os.Exit(1)
	}
	if err := blobStore.EnsureBucket(ctx); err != nil {
		log.Error("failed to ensure bucket", zap.Error(err))
		os.Exit(1)
	}

	// Connect to Redis; the signature cache is optional.
	var sigCache rag.SignatureCache
	if redisCache, err := gateway.NewRedisSignatureCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.SignatureCacheTTL); err != nil {
		log.Warn("Redis unavailable, table signature caching disabled", zap.Error(err))
	} else {
		sigCache = redisCache
		defer redisCache.Close()
	}

	// Connect to NATS if event publishing is enabled
	var publisher *events.Publisher
	if cfg.NATSEnabled {
		natsClient, err := events.Connect(ctx, events.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Warn("failed to connect to NATS, turn events disabled", zap.Error(err))
		} else {
			defer natsClient.Close()
			publisher, err = events.NewPublisher(ctx, natsClient, log)
			if err != nil {
				log.Warn("failed to ensure event stream, turn events disabled", zap.Error(err))
				publisher = nil
			}
		}
	}

	// Initialize embedders
	textEmbedder, err := gateway.NewOpenAIEmbedder(cfg.OpenAIAPIKey, cfg.EmbeddingModel, int(cfg.TextDimensions))
	if err != nil {
		log.Error("failed to create text embedder", zap.Error(err))
		os.Exit(1)
	}
	clipEmbedder := gateway.NewCLIPEmbedder(cfg.CLIPServiceURL, 30*time.Second)

	// Initialize LLM clients
	var llmClients []llm.Client
	if cfg.OpenAIAPIKey != "" {
		if c, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey); err == nil {
			llmClients = append(llmClients, c)
		}
	}
	if cfg.AnthropicAPIKey != "" {
		if c, err := llm.NewAnthropicClient(cfg.AnthropicAPIKey); err == nil {
			llmClients = append(llmClients, c)
		}
	}
	if len(llmClients) == 0 {
		log.Error("no LLM provider configured")
		os.Exit(1)
	}
	var llmClient llm.Client = llmClients[0]
	for _, c := range llmClients {
		if c.Name() == cfg.DefaultProvider {
			llmClient = c
		}
	}

	// Initialize the retrieval core
	retriever := rag.NewRetriever(textEmbedder, vectorSearch)
	resolver := rag.NewAttachmentResolver(clipEmbedder, vectorSearch, docStore, blobStore, sigCache, rag.ResolverConfig{
		ImagesLimit:  cfg.ImagesLimit,
		TablesLimit:  cfg.TablesLimit,
		PreviewRows:  cfg.TablePreviewRows,
		PreviewChars: cfg.TablePreviewChars,
	})

	// Initialize services
	askSvc := service.NewAskService(convStore, docStore, retriever, resolver, llmClient, publisher, log, service.AskConfig{
		DefaultTopK:   cfg.DefaultTopK,
		MaxTopK:       cfg.MaxTopK,
		HistoryLimit:  cfg.HistoryLimit,
		DefaultModel:  cfg.DefaultModel,
		MaxTableChars: cfg.TablePreviewChars,
	})
	conversationSvc := service.NewConversationService(convStore, docStore)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db, vectorSearch, blobStore)
	askHandler := handler.NewAskHandler(askSvc, log, cfg.MaxTopK)
	modelsHandler := handler.NewModelsHandler(llmClients...)
	conversationHandler := handler.NewConversationHandler(conversationSvc, log)
	documentHandler := handler.NewDocumentHandler(docStore, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Query endpoints
	r.Group(func(r chi.Router) {
		if cfg.AuthEnabled {
			r.Use(middleware.Auth(cfg.JWTSecret))
		}
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Post("/rag/ask", askHandler.Ask)
		r.Get("/rag/models", modelsHandler.List)

		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/conversations", func(r chi.Router) {
				r.Post("/", conversationHandler.Create)
				r.Get("/", conversationHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", conversationHandler.Get)
					r.Delete("/", conversationHandler.Delete)
					r.Get("/messages", conversationHandler.Messages)
					r.Get("/docs", conversationHandler.Docs)
					r.Put("/docs", conversationHandler.UpdateDocs)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", documentHandler.List)
				r.Get("/{id}", documentHandler.Get)
			})
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
