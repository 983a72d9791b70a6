package partyRepository

import (
	"ElectionAssistant/internal/entity"
	contextPkg "ElectionAssistant/pkg/context"
	"context"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type PartyDB struct {
	ID          int64          `db:"id"`
	Position    int            `db:"position"`
	Name        string         `db:"name"`
	ShortName   string         `db:"short_name"`
	Symbol      string         `db:"symbol"`
	Slogans     pq.StringArray `db:"slogans"`
	CMCandidate string         `db:"cm_candidate"`
}

func (p PartyDB) toEntity() entity.Party {
	return entity.Party{
		ID:          p.ID,
		Position:    p.Position,
		Name:        p.Name,
		ShortName:   p.ShortName,
		Symbol:      p.Symbol,
		Slogans:     []string(p.Slogans),
		CMCandidate: p.CMCandidate,
	}
}

func (r *partyRepository) GetAllParties(ctx context.Context) ([]entity.Party, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var rows []PartyDB
	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryGetAllParties)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing parties")
		return nil, err
	}

	parties := make([]entity.Party, 0, len(rows))
	for _, row := range rows {
		parties = append(parties, row.toEntity())
	}

	return parties, nil
}
