package service

import (
	"context"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar repository
type ContentStore interface {
	GetHome(ctx context.Context) (*model.Home, error)
	SaveHome(ctx context.Context, h *model.Home) error
	GetOurStory(ctx context.Context) (*model.OurStory, error)
	SaveOurStory(ctx context.Context, s *model.OurStory) error
	InsertFAQ(ctx context.Context, f *model.FAQ) error
	UpdateFAQ(ctx context.Context, f *model.FAQ) error
	DeleteFAQ(ctx context.Context, id primitive.ObjectID) error
	FindAllFAQs(ctx context.Context) ([]*model.FAQ, error)
}

type ContentService struct {
	repo   ContentStore
	images ImageHost
}

func NewContentService(r ContentStore, images ImageHost) *ContentService {
	return &ContentService{repo: r, images: images}
}

func (s *ContentService) GetHome(ctx context.Context) (*model.Home, error) {
	return s.repo.GetHome(ctx)
}

// SaveHome hace upsert del singleton. Si cambió la imagen hero,
// la anterior se borra del hosting (best-effort).
func (s *ContentService) SaveHome(ctx context.Context, req dto.HomeRequest) (*model.Home, error) {
	existing, err := s.repo.GetHome(ctx)
	if err == nil && s.images != nil &&
		existing.HeroImage != "" && existing.HeroImage != req.HeroImage {
		s.images.Delete(ctx, existing.HeroImage)
	}

	h := &model.Home{
		HeroImage: req.HeroImage,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
	}
	if err := s.repo.SaveHome(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *ContentService) GetOurStory(ctx context.Context) (*model.OurStory, error) {
	return s.repo.GetOurStory(ctx)
}

func (s *ContentService) SaveOurStory(ctx context.Context, req dto.OurStoryRequest) (*model.OurStory, error) {
	existing, err := s.repo.GetOurStory(ctx)
	if err == nil && s.images != nil &&
		existing.Image != "" && existing.Image != req.Image {
		s.images.Delete(ctx, existing.Image)
	}

	story := &model.OurStory{
		Image: req.Image,
		Body:  req.Body,
	}
	if err := s.repo.SaveOurStory(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *ContentService) ListFAQs(ctx context.Context) ([]*model.FAQ, error) {
	return s.repo.FindAllFAQs(ctx)
}

func (s *ContentService) CreateFAQ(ctx context.Context, req dto.FAQRequest) (*model.FAQ, error) {
	f := &model.FAQ{Question: req.Question, Answer: req.Answer}
	if err := s.repo.InsertFAQ(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ContentService) UpdateFAQ(ctx context.Context, id string, req dto.FAQRequest) (*model.FAQ, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	f := &model.FAQ{ID: oid, Question: req.Question, Answer: req.Answer}
	if err := s.repo.UpdateFAQ(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ContentService) DeleteFAQ(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return s.repo.DeleteFAQ(ctx, oid)
}
