package config

import (
	"ElectionAssistant/database/postgres"
	chatHandler "ElectionAssistant/internal/api/chat/handler"
	chatRepository "ElectionAssistant/internal/api/chat/repository"
	chatService "ElectionAssistant/internal/api/chat/service"
	partyHandler "ElectionAssistant/internal/api/party/handler"
	partyRepository "ElectionAssistant/internal/api/party/repository"
	partyService "ElectionAssistant/internal/api/party/service"
	"ElectionAssistant/internal/middleware"
	"ElectionAssistant/pkg/audio"
	"ElectionAssistant/pkg/nlp"
	"ElectionAssistant/pkg/redis"
	"ElectionAssistant/pkg/s3"
	"ElectionAssistant/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	config      *AppConfig
	dataset     *nlp.Dataset
	nlpEngine   *nlp.Engine
	redisServer redis.IRedis
	s3Client    s3.ItfS3
	transcriber audio.ITranscriber
	synthesizer audio.ISynthesizer
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.config == nil {
		return nil, fmt.Errorf("app config is required")
	}
	if server.dataset == nil {
		return nil, fmt.Errorf("party dataset is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log, middleware.DefaultConfig())
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithConfig(cfg *AppConfig) ServerOption {
	return func(s *Server) error {
		s.config = cfg
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil || s.config == nil {
			return fmt.Errorf("logger and config must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.Config{
			RateLimitRPS:   s.config.RateLimitRPS,
			RateLimitBurst: s.config.RateLimitBurst,
		})
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

// WithDatabase connects only when the dataset is read from postgres.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		if s.config == nil || s.config.DatasetSource != "postgres" {
			return nil
		}

		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

// WithDataset loads and validates the party dataset. A dataset that fails
// validation aborts startup.
func WithDataset() ServerOption {
	return func(s *Server) error {
		if s.log == nil || s.config == nil {
			return fmt.Errorf("logger and config must be initialized before dataset")
		}

		var repo partyRepository.Repository
		if s.db != nil {
			repo = partyRepository.New(s.db, s.log)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		ds, err := partyService.NewDatasetLoader(s.log, repo).Load(ctx, s.config.DatasetSource, s.config.DatasetPath)
		if err != nil {
			return err
		}
		s.dataset = ds
		return nil
	}
}

func WithStaticDataset(ds *nlp.Dataset) ServerOption {
	return func(s *Server) error {
		if err := ds.Validate(); err != nil {
			return err
		}
		s.dataset = ds
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

// WithS3Client is a no-op when no bucket is configured.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if errors.Is(err, s3.ErrNotConfigured) {
			return nil
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithSpeech enables transcription and synthesis for whichever API keys are set.
func WithSpeech() ServerOption {
	return func(s *Server) error {
		if s.config == nil {
			return fmt.Errorf("config must be initialized before speech")
		}
		if s.config.OpenAIAPIKey != "" {
			s.transcriber = audio.NewTranscriptionService(s.config.OpenAIAPIKey, s.config.STTLanguage)
		}
		if s.config.ElevenLabsAPIKey != "" && s.config.ElevenLabsVoiceID != "" {
			s.synthesizer = audio.NewTTSService(s.config.ElevenLabsAPIKey, s.config.ElevenLabsVoiceID)
		}
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.nlpEngine = nlp.NewEngine(s.dataset)

	// Party Domain
	partyServices := partyService.NewPartyService(s.log, s.nlpEngine)
	partyHandlers := partyHandler.New(s.log, s.validator, s.middleware, partyServices)

	// Chat Domain
	repoConfig := chatRepository.Config{
		HistoryLimit: s.config.HistoryLimit,
		SessionTTL:   s.config.SessionTTL,
	}
	var chatRepo chatRepository.Repository
	if s.redisServer != nil {
		chatRepo = chatRepository.NewRedisRepository(s.redisServer, s.log, repoConfig)
	} else {
		s.log.Warn("Redis not configured, chat history is kept in memory")
		chatRepo = chatRepository.NewMemoryRepository(repoConfig)
	}

	chatServices := chatService.NewChatService(s.log, chatRepo, s.nlpEngine, s.utils, chatService.Dependencies{
		Transcriber: s.transcriber,
		Synthesizer: s.synthesizer,
		S3Client:    s.s3Client,
	}, &chatService.ChatConfig{SessionTTL: s.config.SessionTTL})
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.handlers = append(s.handlers, partyHandlers, chatHandlers)
}

// Mount attaches middleware and routes without listening; Run and tests share it.
func (s *Server) Mount() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.setupHealthCheck()

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Run() error {
	s.Mount()
	return s.engine.Listen(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.redisServer != nil {
		if cerr := s.redisServer.Close(); cerr != nil {
			s.log.Warnf("Failed to close redis: %v", cerr)
		}
	}
	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil {
			s.log.Warnf("Failed to close database: %v", cerr)
		}
	}

	return err
}

func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
