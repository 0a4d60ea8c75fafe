package service

import (
	"fmt"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/entity"
)

const daysPerWeek = 7

// NormalizeOperatingHours converts the Monday-first weekly hours payload into
// sparse open-day rows. Closed days produce no row; an all-closed week yields
// zero rows and is not an error.
func NormalizeOperatingHours(hours []dto.OperatingHour) ([]entity.Schedule, error) {
	if len(hours) != daysPerWeek {
		return nil, ValidationError{Message: fmt.Sprintf("operating hours must contain %d entries, got %d", daysPerWeek, len(hours))}
	}

	var rows []entity.Schedule
	for i, hour := range hours {
		if hour.Closed {
			continue
		}
		rows = append(rows, entity.Schedule{
			DayOfWeek: i + 1, // 1 = Monday, 7 = Sunday
			IsOpen:    true,
			OpenTime:  hour.OpenTime,
			CloseTime: hour.CloseTime,
		})
	}

	return rows, nil
}
