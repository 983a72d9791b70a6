package partyService

import (
	"ElectionAssistant/internal/api/party"
	"ElectionAssistant/pkg/nlp"
	"context"

	"github.com/sirupsen/logrus"
)

type IPartyService interface {
	GetParties(ctx context.Context) (*party.PartiesResponse, error)
	GetParty(ctx context.Context, shortName string) (*party.PartyResponse, error)
}

type partyService struct {
	log    *logrus.Logger
	engine nlp.INLPEngine
}

func NewPartyService(log *logrus.Logger, engine nlp.INLPEngine) IPartyService {
	return &partyService{
		log:    log,
		engine: engine,
	}
}
