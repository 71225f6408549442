package service

import (
	"context"
	"errors"
	"movie_review/configs"
	"movie_review/internal/repository"
	"movie_review/model"
	"movie_review/pkg/metrics"
	"movie_review/pkg/validation"
	"movie_review/util"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Signup(ctx context.Context, req model.SignupReq) (*model.AuthRes, error)
	Login(ctx context.Context, req model.LoginReq) (*model.AuthRes, error)
	VerifyToken(token string) (string, error)
	Authorize(ctx context.Context, userId string, obj string, act string) (*model.User, error)
	RequireAdmin(ctx context.Context, token string) (*model.User, error)
	GetProfile(ctx context.Context, userId string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userId string, req model.UpdateProfileReq) (*model.UserProfile, error)
}

type UserService struct {
	userRepo   repository.IUserRepository
	tokens     *util.TokenManager
	access     IAccessService
	cache      ICacheService
	bcryptCost int
}

func NewUserService(userRepo repository.IUserRepository, tokens *util.TokenManager, access IAccessService, cache ICacheService, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		userRepo:   userRepo,
		tokens:     tokens,
		access:     access,
		cache:      cache,
		bcryptCost: bcryptCost,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) Signup(ctx context.Context, req model.SignupReq) (*model.AuthRes, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validation.ValidateStruct(req); err != nil {
		metrics.AuthAttempts.WithLabelValues("signup", "invalid").Inc()
		return nil, err
	}
	if configs.GetDbConfigs().DisableSignup {
		metrics.AuthAttempts.WithLabelValues("signup", "disabled").Inc()
		return nil, model.ErrSignupDisabled
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
		metrics.AuthAttempts.WithLabelValues("signup", "duplicate").Inc()
		return nil, model.ErrDuplicateUser
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetUserByUsername(ctx, req.Username); err == nil {
		metrics.AuthAttempts.WithLabelValues("signup", "duplicate").Inc()
		return nil, model.ErrDuplicateUser
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.User{
		Id:        primitive.NewObjectID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Role:      model.RoleUser,
		JoinDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// the unique indexes turn a racing signup into ErrDuplicateUser here
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			metrics.AuthAttempts.WithLabelValues("signup", "duplicate").Inc()
		}
		return nil, err
	}

	token, err := s.tokens.CreateToken(user.Id.Hex())
	if err != nil {
		return nil, err
	}
	metrics.AuthAttempts.WithLabelValues("signup", "success").Inc()
	return &model.AuthRes{Token: token, User: user.Profile()}, nil
}

func (s *UserService) Login(ctx context.Context, req model.LoginReq) (*model.AuthRes, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.ValidateStruct(req); err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "invalid").Inc()
		return nil, err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			metrics.AuthAttempts.WithLabelValues("login", "unknown_user").Inc()
		}
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "wrong_password").Inc()
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user.Id.Hex())
	if err != nil {
		return nil, err
	}
	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	return &model.AuthRes{Token: token, User: user.Profile()}, nil
}

// VerifyToken only checks signature and expiry and returns the user id it carries.
func (s *UserService) VerifyToken(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", model.ErrUnauthorized
	}
	_, claims, err := s.tokens.VerifyToken(token)
	if err != nil {
		return "", errors.Join(model.ErrUnauthorized, err)
	}
	return claims.UserId, nil
}

// Authorize loads the user and checks its role against the allow-list.
func (s *UserService) Authorize(ctx context.Context, userId string, obj string, act string) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, model.ErrUnauthorized
	}
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrUnauthorized
		}
		return nil, err
	}
	if !s.access.CanAccess(user.Role, obj, act) {
		return nil, model.ErrUnauthorized
	}
	return user, nil
}

func (s *UserService) RequireAdmin(ctx context.Context, token string) (*model.User, error) {
	userId, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	return s.Authorize(ctx, userId, ObjAdmin, ActAccess)
}

func (s *UserService) GetProfile(ctx context.Context, userId string) (*model.UserProfile, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, model.NewValidationError("id", "must be a valid id")
	}
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userId string, req model.UpdateProfileReq) (*model.UserProfile, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, model.ErrUnauthorized
	}

	if req.Username != nil {
		v := strings.TrimSpace(*req.Username)
		req.Username = &v
	}
	if req.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &v
	}
	if req.ProfilePicture != nil {
		v := strings.TrimSpace(*req.ProfilePicture)
		req.ProfilePicture = &v
	}
	if err = validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateUserProfile(ctx, id, model.ProfileUpdate{
		Username:       req.Username,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return nil, err
	}
	s.cache.DeleteUserSummary(ctx, userId)

	profile := user.Profile()
	return &profile, nil
}
