package repository

import (
	"context"
	"time"

	"luxe-store-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContentRepository agrupa los contenidos editables del sitio:
// home (singleton), our-story (singleton) y FAQs (lista).
type MongoContentRepository struct {
	home  *mongo.Collection
	story *mongo.Collection
	faqs  *mongo.Collection
}

func NewMongoContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{
		home:  db.Collection("home"),
		story: db.Collection("our_story"),
		faqs:  db.Collection("faqs"),
	}
}

func (m *MongoContentRepository) GetHome(ctx context.Context) (*model.Home, error) {
	var res model.Home
	err := m.home.FindOne(ctx, bson.M{}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoContentRepository) SaveHome(ctx context.Context, h *model.Home) error {
	h.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"hero_image": h.HeroImage,
		"title":      h.Title,
		"subtitle":   h.Subtitle,
		"updated_at": h.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := m.home.UpdateOne(ctx, bson.M{}, update, opts)
	return err
}

func (m *MongoContentRepository) GetOurStory(ctx context.Context) (*model.OurStory, error) {
	var res model.OurStory
	err := m.story.FindOne(ctx, bson.M{}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoContentRepository) SaveOurStory(ctx context.Context, s *model.OurStory) error {
	s.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"image":      s.Image,
		"body":       s.Body,
		"updated_at": s.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := m.story.UpdateOne(ctx, bson.M{}, update, opts)
	return err
}

func (m *MongoContentRepository) InsertFAQ(ctx context.Context, f *model.FAQ) error {
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	res, err := m.faqs.InsertOne(ctx, f)
	if err != nil {
		return err
	}
	f.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *MongoContentRepository) UpdateFAQ(ctx context.Context, f *model.FAQ) error {
	f.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"question":   f.Question,
		"answer":     f.Answer,
		"updated_at": f.UpdatedAt,
	}}
	res, err := m.faqs.UpdateOne(ctx, bson.M{"_id": f.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoContentRepository) DeleteFAQ(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.faqs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoContentRepository) FindAllFAQs(ctx context.Context) ([]*model.FAQ, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := m.faqs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.FAQ
	for cur.Next(ctx) {
		var v model.FAQ
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}
