package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram/internal/database"
	"foodgram/internal/logging"
)

type Service struct {
	repo    Repository
	tokens  TokenIssuer
	subs    SubscriptionChecker
	purgers []UserPurger
}

func NewService(repo Repository, tokens TokenIssuer, subs SubscriptionChecker) *Service {
	return &Service{repo: repo, tokens: tokens, subs: subs}
}

// RegisterPurger adds a cleanup step to account deletion.
func (s *Service) RegisterPurger(p UserPurger) {
	s.purgers = append(s.purgers, p)
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if err := s.checkAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Email:        email,
		Username:     username,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hash,
		Role:         RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if database.IsUniqueViolation(err) {
			// lost a race with a concurrent signup; report which field
			if err := s.checkAvailable(ctx, username, email); err != nil {
				return nil, err
			}
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logging.Ctx(ctx).Info().Int64("user_id", u.ID).Msg("user registered")
	return u, nil
}

func (s *Service) checkAvailable(ctx context.Context, username, email string) error {
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}
	return nil
}

// Login checks credentials and returns a signed bearer token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if CheckPassword(req.Password, u.PasswordHash) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Profile returns the user's public profile as seen by viewerID
// (0 for anonymous).
func (s *Service) Profile(ctx context.Context, viewerID, userID int64) (Profile, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	subscribed, err := s.isSubscribed(ctx, viewerID, u.ID)
	if err != nil {
		return Profile{}, err
	}
	return ToFullProfile(u, subscribed), nil
}

// ProfilesByIDs resolves several users at once. Unknown ids are skipped.
func (s *Service) ProfilesByIDs(ctx context.Context, viewerID int64, ids []int64) (map[int64]Profile, error) {
	users, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]Profile, len(users))
	for i := range users {
		subscribed, err := s.isSubscribed(ctx, viewerID, users[i].ID)
		if err != nil {
			return nil, err
		}
		out[users[i].ID] = ToFullProfile(&users[i], subscribed)
	}
	return out, nil
}

func (s *Service) ListProfiles(ctx context.Context, viewerID int64, offset, limit int) ([]Profile, int64, error) {
	users, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]Profile, 0, len(users))
	for i := range users {
		subscribed, err := s.isSubscribed(ctx, viewerID, users[i].ID)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, ToFullProfile(&users[i], subscribed))
	}
	return out, total, nil
}

func (s *Service) isSubscribed(ctx context.Context, viewerID, authorID int64) (bool, error) {
	if viewerID == 0 || viewerID == authorID || s.subs == nil {
		return false, nil
	}
	return s.subs.IsSubscribed(ctx, viewerID, authorID)
}

func (s *Service) SetPassword(ctx context.Context, userID int64, req SetPasswordRequest) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if CheckPassword(req.CurrentPassword, u.PasswordHash) != nil {
		return ErrWrongPassword
	}
	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}

// SetAvatar stores an opaque image reference.
func (s *Service) SetAvatar(ctx context.Context, userID int64, avatar string) (string, error) {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		return "", ErrAvatarRequired
	}
	if err := s.repo.UpdateAvatar(ctx, userID, &avatar); err != nil {
		return "", err
	}
	return avatar, nil
}

func (s *Service) DeleteAvatar(ctx context.Context, userID int64) error {
	return s.repo.UpdateAvatar(ctx, userID, nil)
}

// DeleteAccount removes the user together with everything they own.
func (s *Service) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID, s.purgers); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Int64("user_id", userID).Msg("account deleted")
	return nil
}
