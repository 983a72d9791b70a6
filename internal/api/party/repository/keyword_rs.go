package partyRepository

import (
	"ElectionAssistant/internal/entity"
	contextPkg "ElectionAssistant/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

type KeywordDB struct {
	ID      int64  `db:"id"`
	Keyword string `db:"keyword"`
}

func (r *keywordRepository) GetAllKeywords(ctx context.Context) ([]entity.ElectionKeyword, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var rows []KeywordDB
	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryGetAllKeywords)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing election keywords")
		return nil, err
	}

	keywords := make([]entity.ElectionKeyword, 0, len(rows))
	for _, row := range rows {
		keywords = append(keywords, entity.ElectionKeyword{ID: row.ID, Keyword: row.Keyword})
	}

	return keywords, nil
}
