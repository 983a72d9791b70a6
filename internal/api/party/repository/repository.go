package partyRepository

import (
	"ElectionAssistant/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor = r.DB
	commitFunc := func() error { return nil }
	rollbackFunc := func() error { return nil }

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	}

	return Client{
		Parties:  &partyRepository{q: sqlExecutor, log: r.log},
		Keywords: &keywordRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Parties interface {
		GetAllParties(ctx context.Context) ([]entity.Party, error)
	}

	Keywords interface {
		GetAllKeywords(ctx context.Context) ([]entity.ElectionKeyword, error)
	}

	Commit   func() error
	Rollback func() error
}

type partyRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type keywordRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
