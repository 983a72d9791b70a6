package chatService

import (
	"ElectionAssistant/internal/api/chat"
	chatRepository "ElectionAssistant/internal/api/chat/repository"
	"ElectionAssistant/internal/entity"
	"ElectionAssistant/pkg/audio"
	"ElectionAssistant/pkg/nlp"
	"ElectionAssistant/pkg/s3"
	"ElectionAssistant/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	StartSession(ctx context.Context) (*chat.SessionResponse, error)
	SendMessage(ctx context.Context, sessionID string, req chat.SendMessageRequest) (*chat.ExchangeResponse, error)
	SendVoice(ctx context.Context, sessionID string, req chat.SendVoiceRequest) (*chat.ExchangeResponse, error)
	GetHistory(ctx context.Context, sessionID string) (*chat.HistoryResponse, error)
	ClearHistory(ctx context.Context, sessionID string) error
	Analyze(ctx context.Context, req chat.AnalyzeRequest) (*chat.AnalyzeResponse, error)
	Suggest(ctx context.Context, req chat.SuggestionsRequest) (*chat.SuggestionsResponse, error)
}

type chatService struct {
	log         *logrus.Logger
	chatRepo    chatRepository.Repository
	engine      nlp.INLPEngine
	suggester   *nlp.Suggester
	utils       utils.IUtils
	transcriber audio.ITranscriber
	synthesizer audio.ISynthesizer
	s3Client    s3.ItfS3
	ids         *entity.MessageIDGenerator
	config      *ChatConfig
}

type ChatConfig struct {
	SessionTTL time.Duration `json:"session_ttl"`
}

// Speech dependencies are optional. A nil transcriber disables voice input,
// a nil synthesizer keeps replies text only and a nil s3 client returns audio inline.
type Dependencies struct {
	Transcriber audio.ITranscriber
	Synthesizer audio.ISynthesizer
	S3Client    s3.ItfS3
}

func NewChatService(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	engine nlp.INLPEngine,
	utils utils.IUtils,
	deps Dependencies,
	config *ChatConfig,
) IChatService {
	if config == nil {
		config = &ChatConfig{SessionTTL: 24 * time.Hour}
	}

	return &chatService{
		log:         log,
		chatRepo:    chatRepo,
		engine:      engine,
		suggester:   nlp.NewSuggester(engine.Parties()),
		utils:       utils,
		transcriber: deps.Transcriber,
		synthesizer: deps.Synthesizer,
		s3Client:    deps.S3Client,
		ids:         entity.NewMessageIDGenerator(),
		config:      config,
	}
}
