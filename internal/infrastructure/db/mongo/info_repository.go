package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

const (
	infoCollection = "site_config"
	infoDocID      = "pousada"
)

// InfoRepository persists the singleton site configuration under a fixed
// document id.
type InfoRepository struct {
	coll *mongo.Collection
}

func NewInfoRepository(db *mongo.Database) *InfoRepository {
	return &InfoRepository{coll: db.Collection(infoCollection)}
}

type optionDoc struct {
	ID    string  `bson:"id"`
	Label string  `bson:"label"`
	Price float64 `bson:"price"`
}

type infoDoc struct {
	ID          string      `bson:"_id"`
	Description string      `bson:"description"`
	Options     []optionDoc `bson:"options"`
}

func (r *InfoRepository) Get(ctx context.Context) (*domain.SiteConfig, error) {
	var doc infoDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": infoDocID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("find site config: %w", err)
	}

	cfg := &domain.SiteConfig{Description: doc.Description, Options: make([]domain.Option, 0, len(doc.Options))}
	for _, o := range doc.Options {
		cfg.Options = append(cfg.Options, domain.Option{ID: o.ID, Label: o.Label, Price: o.Price})
	}
	return cfg, nil
}

func (r *InfoRepository) Put(ctx context.Context, cfg *domain.SiteConfig) error {
	doc := infoDoc{ID: infoDocID, Description: cfg.Description, Options: make([]optionDoc, 0, len(cfg.Options))}
	for _, o := range cfg.Options {
		doc.Options = append(doc.Options, optionDoc{ID: o.ID, Label: o.Label, Price: o.Price})
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": infoDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put site config: %w", err)
	}
	return nil
}
