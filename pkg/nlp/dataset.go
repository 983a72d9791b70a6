package nlp

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

//go:embed data/parties.json
var defaultDataset []byte

type PartyRecord struct {
	Name        string   `json:"name" validate:"required"`
	ShortName   string   `json:"shortName" validate:"required"`
	Symbol      string   `json:"symbol" validate:"required"`
	Slogans     []string `json:"slogans" validate:"required,min=1,dive,required"`
	CMCandidate string   `json:"cmCandidate" validate:"required"`
}

// Dataset is the party catalogue and domain keyword set the engine answers from.
// Party order is significant: earlier records win ties during entity extraction.
type Dataset struct {
	Parties  []PartyRecord `json:"parties" validate:"required,min=1,dive"`
	Keywords []string      `json:"keywords" validate:"dive,required"`
}

var datasetValidator = validator.New()

func NewDataset(parties []PartyRecord, keywords []string) (*Dataset, error) {
	ds := &Dataset{
		Parties:  make([]PartyRecord, len(parties)),
		Keywords: append([]string(nil), keywords...),
	}
	for i, p := range parties {
		p.Slogans = append([]string(nil), p.Slogans...)
		ds.Parties[i] = p
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func LoadDatasetFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return ParseDataset(data)
}

func DefaultDataset() (*Dataset, error) {
	return ParseDataset(defaultDataset)
}

func (d *Dataset) Validate() error {
	if err := datasetValidator.Struct(d); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}
	return nil
}
