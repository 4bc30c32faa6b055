package db

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("active DESC, name ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

func (repo *HabitRepository) DeleteByIDForUser(habitID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CreateLogIfAbsent inserts a completion row, relying on the unique
// (habit_id, date) index to resolve concurrent double-submits: the loser's
// insert becomes a no-op and created reports false.
func (repo *HabitRepository) CreateLogIfAbsent(entry *models.HabitLog) (bool, error) {
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *HabitRepository) ListLogsByHabit(habitID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("habit_id = ?", habitID).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitRepository) ListLogsByHabitDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, dayEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListLogsByUserRange returns completion rows across all of a user's habits
// for a half-open date window; ownership is scoped through the habits table
// since log rows only carry the habit id.
func (repo *HabitRepository) ListLogsByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Joins("JOIN habits ON habits.id = habit_logs.habit_id").
		Where("habits.user_id = ? AND habit_logs.date >= ? AND habit_logs.date < ?", userID, fromStart, toEnd).
		Order("habit_logs.date ASC, habit_logs.id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// UpdateStreakFields writes only the cached streak columns.
func (repo *HabitRepository) UpdateStreakFields(habitID uint, currentStreak int, bestStreak int, lastDoneDate *time.Time) error {
	return repo.database.Model(&models.Habit{}).Where("id = ?", habitID).Updates(map[string]any{
		"current_streak": currentStreak,
		"best_streak":    bestStreak,
		"last_done_date": lastDoneDate,
	}).Error
}
