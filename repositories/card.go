package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/az1406/MonsterCardTradingGame/models"
)

// ErrCardExists signals a duplicate card id on create.
var ErrCardExists = errors.New("card with the same id already exists")

// CardRepository is the persistence boundary for the card catalog, user
// stacks, and active decks.
type CardRepository interface {
	GetByID(id string) (*models.Card, error)
	Create(card *models.Card) error
	NextPackageNumber() (int, error)
	CardsInPackage(packageNumber int) ([]models.Card, error)
	CurrentPackageNumber() (int, error)
	AddCardToStack(userToken, cardID string, packageNumber int) error
	GetDeck(userToken string) ([]models.Card, error)
	AddCardToDeck(userToken, cardID string) error
}

type GormCardRepository struct {
	DB *gorm.DB
}

func NewCardRepository(db *gorm.DB) *GormCardRepository {
	return &GormCardRepository{DB: db}
}

func (r *GormCardRepository) GetByID(id string) (*models.Card, error) {
	var card models.Card
	err := r.DB.Where("id = ?", id).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get card by id: %w", err)
	}
	return &card, nil
}

func (r *GormCardRepository) Create(card *models.Card) error {
	existing, err := r.GetByID(card.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrCardExists
	}
	if err := r.DB.Create(card).Error; err != nil {
		return fmt.Errorf("create card: %w", err)
	}
	return nil
}

// NextPackageNumber returns the number the next minted package will get.
func (r *GormCardRepository) NextPackageNumber() (int, error) {
	var n int
	err := r.DB.Model(&models.Card{}).
		Select("COALESCE(MAX(package_number), 0) + 1").Scan(&n).Error
	if err != nil {
		return 0, fmt.Errorf("next package number: %w", err)
	}
	return n, nil
}

func (r *GormCardRepository) CardsInPackage(packageNumber int) ([]models.Card, error) {
	var cards []models.Card
	if err := r.DB.Where("package_number = ?", packageNumber).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("cards in package: %w", err)
	}
	return cards, nil
}

// CurrentPackageNumber returns the number of the next package up for sale,
// derived from the highest package already sold into any stack.
func (r *GormCardRepository) CurrentPackageNumber() (int, error) {
	var n int
	err := r.DB.Model(&models.StackCard{}).
		Select("COALESCE(MAX(package_number), 0) + 1").Scan(&n).Error
	if err != nil {
		return 0, fmt.Errorf("current package number: %w", err)
	}
	return n, nil
}

func (r *GormCardRepository) AddCardToStack(userToken, cardID string, packageNumber int) error {
	entry := models.StackCard{UserToken: userToken, CardID: cardID, PackageNumber: packageNumber}
	if err := r.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("add card to stack: %w", err)
	}
	return nil
}

func (r *GormCardRepository) GetDeck(userToken string) ([]models.Card, error) {
	var cards []models.Card
	err := r.DB.
		Raw("SELECT c.* FROM deck d JOIN cards c ON d.card_id = c.id WHERE d.user_token = ?", userToken).
		Scan(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return cards, nil
}

func (r *GormCardRepository) AddCardToDeck(userToken, cardID string) error {
	entry := models.DeckCard{UserToken: userToken, CardID: cardID}
	if err := r.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("add card to deck: %w", err)
	}
	return nil
}
