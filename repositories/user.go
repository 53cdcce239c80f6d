package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/az1406/MonsterCardTradingGame/models"
)

// ErrUserExists signals a duplicate username on create.
var ErrUserExists = errors.New("user with the same username already exists")

// UserRepository is the persistence boundary for accounts. Lookups return
// (nil, nil) when no row matches; concurrent token overwrites are
// last-write-wins at the storage layer.
type UserRepository interface {
	GetByUsername(name string) (*models.User, error)
	GetByToken(token string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Count() (int64, error)
	TopByELO(limit int) ([]models.User, error)
}

type GormUserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) GetByUsername(name string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

func (r *GormUserRepository) GetByToken(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	var user models.User
	err := r.DB.Where("token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by token: %w", err)
	}
	return &user, nil
}

func (r *GormUserRepository) Create(user *models.User) error {
	existing, err := r.GetByUsername(user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExists
	}
	if err := r.DB.Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) Update(user *models.User) error {
	if err := r.DB.Save(user).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) Count() (int64, error) {
	var n int64
	if err := r.DB.Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *GormUserRepository) TopByELO(limit int) ([]models.User, error) {
	var users []models.User
	if err := r.DB.Order("elo DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("top by elo: %w", err)
	}
	return users, nil
}
