package usecase

import (
	authdomain "postpilot-backend/internal/auth/domain"
	authdto "postpilot-backend/internal/auth/dto"
	"postpilot-backend/internal/auth/password"
	"postpilot-backend/internal/auth/repository"
	"postpilot-backend/internal/auth/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	tokens   *token.Manager
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, hasher *password.Hasher, tokens *token.Manager) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:        req.Email,
		PasswordHash: hash,
	}
	// Create also reports ErrEmailTaken if a concurrent signup won the race
	// between the check above and the insert.
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	tok, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &authdto.TokenResponse{Token: tok}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password return the same error so a caller
	// cannot tell which one was wrong.
	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}
	if !u.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, authdomain.ErrInvalidCredentials
	}

	tok, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &authdto.TokenResponse{Token: tok}, nil
}

func (u *authUsecase) Profile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}
