package service

import (
	"context"
	"fmt"
	"movie_review/internal/repository"
	"movie_review/model"
	"movie_review/pkg/metrics"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IReviewService interface {
	AddReview(ctx context.Context, userId string, movieId string, req model.AddReviewReq) (*model.Review, float64, error)
	GetMovieReviews(ctx context.Context, movieId string) ([]model.ReviewWithUser, error)
}

type ReviewService struct {
	reviewRepo repository.IReviewRepository
	movieRepo  repository.IMovieRepository
	userRepo   repository.IUserRepository
	locker     IMovieLocker
	cache      ICacheService
}

func NewReviewService(
	reviewRepo repository.IReviewRepository,
	movieRepo repository.IMovieRepository,
	userRepo repository.IUserRepository,
	locker IMovieLocker,
	cache ICacheService,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		userRepo:   userRepo,
		locker:     locker,
		cache:      cache,
	}
}

//------------------------------------------
//------------------------------------------

// AddReview appends the review and rewrites the movie's average from every stored rating.
// Both steps run under the movie lock so concurrent reviews can't overwrite each other's aggregate.
func (s *ReviewService) AddReview(ctx context.Context, userId string, movieId string, req model.AddReviewReq) (*model.Review, float64, error) {
	if !model.ValidRating(req.Rating) {
		return nil, 0, model.NewValidationError("rating", fmt.Sprintf("must be between %d and %d", model.MinRating, model.MaxRating))
	}
	uid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, 0, model.ErrUnauthorized
	}
	mid, err := primitive.ObjectIDFromHex(movieId)
	if err != nil {
		return nil, 0, model.ErrMovieNotFound
	}
	if _, err = s.movieRepo.GetMovieById(ctx, mid); err != nil {
		return nil, 0, err
	}

	unlock, err := s.locker.Lock(ctx, mid.Hex())
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	review := &model.Review{
		Id:         primitive.NewObjectID(),
		UserId:     uid,
		MovieId:    mid,
		Rating:     req.Rating,
		ReviewText: strings.TrimSpace(req.ReviewText),
		Timestamp:  time.Now().UTC(),
	}
	if err = s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, 0, err
	}
	metrics.ReviewsAdded.Inc()

	start := time.Now()
	average, err := s.reviewRepo.GetAverageRating(ctx, mid)
	if err != nil {
		return nil, 0, err
	}
	if err = s.movieRepo.UpdateAverageRating(ctx, mid, average); err != nil {
		return nil, 0, err
	}
	metrics.AggregateRecomputeDuration.Observe(time.Since(start).Seconds())

	return review, average, nil
}

func (s *ReviewService) GetMovieReviews(ctx context.Context, movieId string) ([]model.ReviewWithUser, error) {
	mid, err := primitive.ObjectIDFromHex(movieId)
	if err != nil {
		return nil, model.ErrMovieNotFound
	}
	reviews, err := s.reviewRepo.GetMovieReviews(ctx, mid)
	if err != nil {
		return nil, err
	}

	authors, err := s.getAuthors(ctx, reviews)
	if err != nil {
		return nil, err
	}

	result := make([]model.ReviewWithUser, len(reviews))
	for i, r := range reviews {
		author, ok := authors[r.UserId.Hex()]
		if !ok {
			author = model.UserSummary{Id: r.UserId}
		}
		result[i] = model.ReviewWithUser{
			Id:         r.Id,
			User:       author,
			MovieId:    r.MovieId,
			Rating:     r.Rating,
			ReviewText: r.ReviewText,
			Timestamp:  r.Timestamp,
		}
	}
	return result, nil
}

func (s *ReviewService) getAuthors(ctx context.Context, reviews []model.Review) (map[string]model.UserSummary, error) {
	seen := make(map[string]struct{}, len(reviews))
	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		hex := r.UserId.Hex()
		if _, ok := seen[hex]; !ok {
			seen[hex] = struct{}{}
			ids = append(ids, hex)
		}
	}

	authors, missed := s.cache.GetUserSummaries(ctx, ids)
	if len(missed) == 0 {
		return authors, nil
	}

	objectIds := make([]primitive.ObjectID, 0, len(missed))
	for _, id := range missed {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			objectIds = append(objectIds, oid)
		}
	}
	users, err := s.userRepo.GetUsersByIds(ctx, objectIds)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.UserSummary, len(users))
	for i := range users {
		summaries[i] = users[i].Summary()
		authors[summaries[i].Id.Hex()] = summaries[i]
	}
	s.cache.SetUserSummaries(ctx, summaries)
	return authors, nil
}
