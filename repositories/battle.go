package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/az1406/MonsterCardTradingGame/models"
)

// BattleRepository persists battle records. A battle is written exactly
// twice: on creation and on finalization.
type BattleRepository interface {
	Create(battle *models.Battle) error
	UpdateResult(battle *models.Battle) error
	Count() (int64, error)
}

type GormBattleRepository struct {
	DB *gorm.DB
}

func NewBattleRepository(db *gorm.DB) *GormBattleRepository {
	return &GormBattleRepository{DB: db}
}

func (r *GormBattleRepository) Create(battle *models.Battle) error {
	if err := r.DB.Create(battle).Error; err != nil {
		return fmt.Errorf("create battle: %w", err)
	}
	return nil
}

func (r *GormBattleRepository) UpdateResult(battle *models.Battle) error {
	if err := r.DB.Save(battle).Error; err != nil {
		return fmt.Errorf("update battle result: %w", err)
	}
	return nil
}

func (r *GormBattleRepository) Count() (int64, error) {
	var n int64
	if err := r.DB.Model(&models.Battle{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count battles: %w", err)
	}
	return n, nil
}
