package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"addisKitchen/internal/modules/admin/application/port"
	"addisKitchen/internal/shared/apperr"
	"addisKitchen/internal/shared/auth"
)

// ErrBadCredentials covers both unknown usernames and wrong passwords so the
// response does not reveal which one failed.
var ErrBadCredentials = errors.New("invalid username or password")

type SignInInput struct {
	Username string
	Password string
}

type SignInOutput struct {
	Token    string
	Username string
}

// SignInUseCase checks credentials against the stored bcrypt hash and issues a
// session token.
type SignInUseCase struct {
	Repo   port.Repository
	Issuer auth.TokenIssuer
}

func NewSignInUseCase(repo port.Repository, issuer auth.TokenIssuer) *SignInUseCase {
	return &SignInUseCase{Repo: repo, Issuer: issuer}
}

func (uc *SignInUseCase) Execute(ctx context.Context, input SignInInput) (*SignInOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, apperr.Validation("username and password are required")
	}

	user, err := uc.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			slog.Warn("sign-in for unknown user", slog.String("username", username))
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		slog.Warn("sign-in with wrong password", slog.String("username", username))
		return nil, ErrBadCredentials
	}

	token, err := uc.Issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	slog.Info("admin signed in", slog.String("username", username))
	return &SignInOutput{Token: token, Username: user.Username}, nil
}
