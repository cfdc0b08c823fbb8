package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) error
}

type userService struct {
	repo *repository.Repository
	tx   database.TxManager
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, tx database.TxManager, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		tx:   tx,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user", userID.String())
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	users, err := us.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err))
		return nil, err
	}

	total, err := us.repo.User.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, err
	}

	return response.Paginate(users, response.UserToResponse, req.CurrentPage(), req.Limit(), total), nil
}

// DeleteUser removes the user together with every booking they own, in one
// transaction.
func (us *userService) DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) error {
	if !actor.IsStaff() {
		return fmt.Errorf("delete user: %w", apperr.ErrForbidden)
	}

	var removed int64
	err := us.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := us.repo.User.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperr.NotFound("user", userID.String())
		}

		removed, err = us.repo.Booking.DeleteByUserID(ctx, userID)
		if err != nil {
			return err
		}

		return us.repo.User.Delete(ctx, userID)
	})
	if err != nil {
		us.log.Warn("Failed to delete user", zap.Error(err), zap.String("user_id", userID.String()))
		return err
	}

	us.log.Info("User deleted",
		zap.String("user_id", userID.String()),
		zap.String("deleted_by", actor.UserID.String()),
		zap.Int64("bookings_removed", removed))

	return nil
}
