package usecase

import (
	authdomain "postpilot-backend/internal/auth/domain"
	authrepo "postpilot-backend/internal/auth/repository"
	userdto "postpilot-backend/internal/user/dto"
)

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo authrepo.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo authrepo.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) GetProfile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) UpdateSubscription(userID string, tier authdomain.Tier) (*authdomain.User, error) {
	if !authdomain.ValidTier(tier) {
		return nil, authdomain.ErrInvalidTier
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	user.SubscriptionTier = &tier
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) UpdateSettings(userID string, req *userdto.UpdateSettingsRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	if req.ReviewMode != nil {
		user.ReviewMode = *req.ReviewMode
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
