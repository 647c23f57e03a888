package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authdomain "blog-backend/internal/auth/domain"
)

// userRepository implements UserRepository on GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID string, token *string) error {
	return r.db.WithContext(ctx).Model(&authdomain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"refresh_token": token,
			"updated_at":    time.Now(),
		}).Error
}

func (r *userRepository) UpdateBio(ctx context.Context, userID, bio string) (matched bool, changed bool, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		matched = true
		if user.Bio == bio {
			return nil
		}
		changed = true
		return tx.Model(&authdomain.User{}).Where("id = ?", userID).
			Updates(map[string]interface{}{
				"bio":        bio,
				"updated_at": time.Now(),
			}).Error
	})
	return matched, changed, err
}

func (r *userRepository) Delete(ctx context.Context, userID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&authdomain.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
