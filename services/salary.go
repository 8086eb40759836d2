package services

import (
	"errors"
	"strings"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SalaryInput struct {
	Username        string   `json:"username"`
	Month           string   `json:"month"`
	TotalSalary     float64  `json:"total_salary"`
	DaysAbsent      *int     `json:"days_absent"`
	RemainingSalary *float64 `json:"remaining_salary"`
	DueDate         string   `json:"due_date"`
	Note            string   `json:"note"`
}

// BuildSalary validates one salary period. Remaining defaults to the full
// salary (nothing paid yet) and a negative remaining clamps to zero.
func BuildSalary(in SalaryInput) (models.Salary, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return models.Salary{}, invalid("username", "is required")
	}

	month, err := helpers.NormalizeMonth(in.Month)
	if err != nil {
		return models.Salary{}, invalid("month", "must be YYYY-MM")
	}

	total, err := helpers.ParseMoney(in.TotalSalary, true)
	if err != nil {
		return models.Salary{}, invalid("total_salary", "must be a finite non-negative number")
	}

	daysAbsent := 0
	if in.DaysAbsent != nil {
		if *in.DaysAbsent < 0 {
			return models.Salary{}, invalid("days_absent", "must not be negative")
		}
		daysAbsent = *in.DaysAbsent
	}

	remaining := total
	if in.RemainingSalary != nil {
		if *in.RemainingSalary < 0 {
			remaining = decimal.Zero
		} else {
			remaining, err = helpers.ParseMoney(*in.RemainingSalary, true)
			if err != nil {
				return models.Salary{}, invalid("remaining_salary", "must be a finite number")
			}
		}
	}

	dueDate := ""
	if strings.TrimSpace(in.DueDate) != "" {
		dueDate, err = helpers.NormalizeDateString(in.DueDate)
		if err != nil {
			return models.Salary{}, invalid("due_date", "is not a valid date")
		}
	}

	return models.Salary{
		Username:        username,
		Month:           month,
		TotalSalary:     total,
		DaysAbsent:      daysAbsent,
		RemainingSalary: remaining,
		DueDate:         dueDate,
		Note:            strings.TrimSpace(in.Note),
	}, nil
}

// UpsertSalary writes the one row for (username, month), creating or
// replacing its values. The write conflicts on the unique period index, so
// concurrent upserts for the same period serialize into one row instead of
// failing on the index.
func UpsertSalary(in SalaryInput) (models.Salary, error) {
	record, err := BuildSalary(in)
	if err != nil {
		return models.Salary{}, err
	}

	if err := database.DB.Clauses(salaryConflict()).Create(&record).Error; err != nil {
		return models.Salary{}, err
	}

	var saved models.Salary
	if err := database.DB.First(&saved, record.ID).Error; err != nil {
		return models.Salary{}, err
	}
	return saved, nil
}

// salaryConflict targets idx_salary_period and replaces the mutable fields.
func salaryConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_salary", "days_absent", "remaining_salary", "due_date", "note", "updated_at",
		}),
	}
}

type SalaryPatch struct {
	TotalSalary     *float64 `json:"total_salary"`
	DaysAbsent      *int     `json:"days_absent"`
	RemainingSalary *float64 `json:"remaining_salary"`
	DueDate         *string  `json:"due_date"`
	Note            *string  `json:"note"`
}

func UpdateSalary(id uint, patch SalaryPatch) (models.Salary, error) {
	var record models.Salary
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSalaryNotFound
			}
			return err
		}

		if patch.TotalSalary != nil {
			total, err := helpers.ParseMoney(*patch.TotalSalary, true)
			if err != nil {
				return invalid("total_salary", "must be a finite non-negative number")
			}
			record.TotalSalary = total
		}
		if patch.DaysAbsent != nil {
			if *patch.DaysAbsent < 0 {
				return invalid("days_absent", "must not be negative")
			}
			record.DaysAbsent = *patch.DaysAbsent
		}
		if patch.RemainingSalary != nil {
			if *patch.RemainingSalary < 0 {
				record.RemainingSalary = decimal.Zero
			} else {
				remaining, err := helpers.ParseMoney(*patch.RemainingSalary, true)
				if err != nil {
					return invalid("remaining_salary", "must be a finite number")
				}
				record.RemainingSalary = remaining
			}
		}
		if patch.DueDate != nil {
			if *patch.DueDate == "" {
				record.DueDate = ""
			} else {
				dueDate, err := helpers.NormalizeDateString(*patch.DueDate)
				if err != nil {
					return invalid("due_date", "is not a valid date")
				}
				record.DueDate = dueDate
			}
		}
		if patch.Note != nil {
			record.Note = strings.TrimSpace(*patch.Note)
		}

		return tx.Save(&record).Error
	})
	return record, err
}

func DeleteSalary(id uint) (models.Salary, error) {
	var record models.Salary
	if err := database.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Salary{}, ErrSalaryNotFound
		}
		return models.Salary{}, err
	}
	if err := database.DB.Delete(&record).Error; err != nil {
		return models.Salary{}, err
	}
	return record, nil
}

func ListSalaries(username, month string) ([]models.Salary, error) {
	q := database.DB.Model(&models.Salary{})
	if u := strings.TrimSpace(username); u != "" {
		q = q.Where("username = ?", u)
	}
	if m := strings.TrimSpace(month); m != "" {
		q = q.Where("month = ?", m)
	}

	var records []models.Salary
	err := q.Order("month desc, created_at desc").Find(&records).Error
	return records, err
}
