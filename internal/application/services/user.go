package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"homedrive-api/internal/application/ports"
	domain "homedrive-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

// ResolveUser maps the identity provider's subject id to a local user,
// creating the record on first sight. Repeated calls return the same user;
// the first call wins on email.
func (us *UserService) ResolveUser(ctx context.Context, authID, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	uRet, err := us.userRepository.CreateUser(ctx, domain.User{
		AuthID: authID,
		Email:  email,
	})
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("users_created_total").Inc()

	return uRet, nil
}

func (us *UserService) RenameUser(ctx context.Context, authID, name string) (*domain.User, error) {
	u, err := us.userRepository.UpdateUserName(ctx, authID, name)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	return u, nil
}
