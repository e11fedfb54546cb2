package usecase

import (
	"context"

	authdomain "postpilot-backend/internal/auth/domain"
	authrepo "postpilot-backend/internal/auth/repository"
	"postpilot-backend/pkg/instagram"
)

// instagramUsecase implements InstagramUsecase interface
type instagramUsecase struct {
	userRepo authrepo.UserRepository
	service  *instagram.Service
}

// NewInstagramUsecase creates a new instance of instagramUsecase
func NewInstagramUsecase(userRepo authrepo.UserRepository, service *instagram.Service) InstagramUsecase {
	return &instagramUsecase{
		userRepo: userRepo,
		service:  service,
	}
}

func (u *instagramUsecase) AuthURL(state string) string {
	return u.service.AuthURL(state)
}

func (u *instagramUsecase) Connect(ctx context.Context, userID, code string) (*ConnectionStatus, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	igUserID, accessToken, err := u.service.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	user.InstagramUserID = igUserID
	user.InstagramToken = accessToken
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	return &ConnectionStatus{Connected: true, InstagramUserID: igUserID}, nil
}

func (u *instagramUsecase) Disconnect(userID string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return authdomain.ErrUserNotFound
	}

	user.InstagramUserID = ""
	user.InstagramToken = ""
	return u.userRepo.Update(user)
}

func (u *instagramUsecase) Status(userID string) (*ConnectionStatus, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	return &ConnectionStatus{
		Connected:       user.InstagramUserID != "",
		InstagramUserID: user.InstagramUserID,
	}, nil
}
