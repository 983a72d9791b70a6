package partyService

import (
	"ElectionAssistant/internal/api/party"
	contextPkg "ElectionAssistant/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *partyService) GetParties(ctx context.Context) (*party.PartiesResponse, error) {
	records := s.engine.Parties()

	parties := make([]party.PartyResponse, 0, len(records))
	for _, p := range records {
		parties = append(parties, party.ToPartyResponse(p))
	}

	return &party.PartiesResponse{
		Parties: parties,
		Total:   len(parties),
	}, nil
}

func (s *partyService) GetParty(ctx context.Context, shortName string) (*party.PartyResponse, error) {
	record, ok := s.engine.FindParty(shortName)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"short_name": shortName,
		}).Debug("Party lookup missed")
		return nil, party.ErrPartyNotFound
	}

	resp := party.ToPartyResponse(record)
	return &resp, nil
}
