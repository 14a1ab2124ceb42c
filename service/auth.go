package service

import (
	"context"
	"fmt"

	"recipehub/controller"
	"recipehub/entity"
	"recipehub/mapper"
	"recipehub/util"

	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates users and issues tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

type authService struct {
	userController controller.UserController
	jwtSecretKey   []byte
}

// NewAuthService creates and returns a new AuthService.
func NewAuthService(userController controller.UserController, cfg *entity.Config) AuthService {
	return &authService{
		userController: userController,
		jwtSecretKey:   []byte(cfg.JWTSecretKey),
	}
}

// Login verifies the credentials and returns the user with a signed token.
func (a *authService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := a.userController.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}
	token, err := util.GenerateJWT(user.ID, user.Email, a.jwtSecretKey)
	if err != nil {
		return nil, "", err
	}
	return mapper.UserModelToEntity(user, false), token, nil
}
