package partyService

import (
	"ElectionAssistant/internal/api/party"
	partyRepository "ElectionAssistant/internal/api/party/repository"
	"ElectionAssistant/internal/entity"
	"ElectionAssistant/pkg/nlp"
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

type DatasetLoader struct {
	log  *logrus.Logger
	repo partyRepository.Repository
}

// NewDatasetLoader builds a loader; repo may be nil unless the postgres source is used.
func NewDatasetLoader(log *logrus.Logger, repo partyRepository.Repository) *DatasetLoader {
	return &DatasetLoader{
		log:  log,
		repo: repo,
	}
}

func (l *DatasetLoader) Load(ctx context.Context, source string, path string) (*nlp.Dataset, error) {
	if source == "" {
		source = party.DatasetSourceEmbedded
	}

	var (
		ds  *nlp.Dataset
		err error
	)

	switch source {
	case party.DatasetSourceEmbedded:
		ds, err = nlp.DefaultDataset()
	case party.DatasetSourceFile:
		if path == "" {
			return nil, party.ErrDatasetPathRequired
		}
		ds, err = nlp.LoadDatasetFile(path)
	case party.DatasetSourcePostgres:
		ds, err = l.loadFromRepository(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", party.ErrUnknownDatasetSource, source)
	}

	if err != nil {
		l.log.WithFields(logrus.Fields{
			"source": source,
			"error":  err.Error(),
		}).Error("Failed to load party dataset")
		return nil, fmt.Errorf("%w: %v", party.ErrDatasetLoadFailed, err)
	}

	l.log.WithFields(logrus.Fields{
		"source":   source,
		"parties":  len(ds.Parties),
		"keywords": len(ds.Keywords),
	}).Info("Party dataset loaded")

	return ds, nil
}

func (l *DatasetLoader) loadFromRepository(ctx context.Context) (*nlp.Dataset, error) {
	if l.repo == nil {
		return nil, party.ErrRepositoryUnavailable
	}

	repo, err := l.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	parties, err := repo.Parties.GetAllParties(ctx)
	if err != nil {
		return nil, err
	}

	keywords, err := repo.Keywords.GetAllKeywords(ctx)
	if err != nil {
		return nil, err
	}

	return BuildDataset(parties, keywords)
}

// BuildDataset orders rows by position and validates them into a Dataset.
func BuildDataset(parties []entity.Party, keywords []entity.ElectionKeyword) (*nlp.Dataset, error) {
	ordered := append([]entity.Party(nil), parties...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	records := make([]nlp.PartyRecord, 0, len(ordered))
	for _, p := range ordered {
		records = append(records, nlp.PartyRecord{
			Name:        p.Name,
			ShortName:   p.ShortName,
			Symbol:      p.Symbol,
			Slogans:     p.Slogans,
			CMCandidate: p.CMCandidate,
		})
	}

	words := make([]string, 0, len(keywords))
	for _, k := range keywords {
		words = append(words, k.Keyword)
	}

	return nlp.NewDataset(records, words)
}
