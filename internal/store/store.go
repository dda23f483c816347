package store

import (
	"errors"

	"github.com/pollbooth-dev/pollbooth/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a poll, option or user does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert hits a uniqueness
	// constraint, such as a taken username.
	ErrDuplicate = errors.New("duplicate record")
)

// Store wraps the database handle and owns all entity access. Handlers
// never touch gorm directly.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreatePoll persists a poll together with its options in one
// transaction, so a poll is never visible with zero options. Option
// order follows the order of texts.
func (s *Store) CreatePoll(question string, optionTexts []string) (*models.Poll, error) {
	poll := models.Poll{Question: question}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&poll).Error; err != nil {
			return err
		}

		for _, text := range optionTexts {
			option := models.Option{PollID: poll.ID, Text: text}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
			poll.Options = append(poll.Options, option)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &poll, nil
}

// GetPoll loads a poll with its options in creation order.
func (s *Store) GetPoll(id uint) (*models.Poll, error) {
	var poll models.Poll

	err := s.db.Preload("Options", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("options.id ASC")
	}).First(&poll, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &poll, nil
}

func (s *Store) ListPolls() ([]models.Poll, error) {
	var polls []models.Poll

	if err := s.db.Order("polls.id ASC").Find(&polls).Error; err != nil {
		return nil, err
	}

	return polls, nil
}

// IncrementVote adds one vote to the option, but only when it belongs to
// the given poll. The increment is a single UPDATE so concurrent votes
// never lose updates. Returns ErrNotFound when the option does not exist
// or belongs to another poll; nothing is mutated in that case.
func (s *Store) IncrementVote(pollID, optionID uint) error {
	result := s.db.Model(&models.Option{}).
		Where("id = ? AND poll_id = ?", optionID, pollID).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeletePoll removes a poll and its options in one transaction. Not
// exposed over HTTP; kept for administrative use.
func (s *Store) DeletePoll(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var poll models.Poll

		if err := tx.First(&poll, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("poll_id = ?", poll.ID).Delete(&models.Option{}).Error; err != nil {
			return err
		}

		return tx.Delete(&poll).Error
	})
}

func (s *Store) CreateUser(user *models.User) error {
	err := s.db.Create(user).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}

	return err
}

func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	var user models.User

	err := s.db.Where("username = ?", username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User

	err := s.db.First(&user, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
