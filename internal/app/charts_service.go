package app

import (
	"context"
	"time"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
)

const maxChartDays = 366

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	clients    domain.ClientRepository
	weightRepo domain.WeightRepository
	waterRepo  domain.WaterRepository
}

// NewChartsService creates a ChartsService backed by the given repositories.
func NewChartsService(c domain.ClientRepository, wr domain.WeightRepository, wa domain.WaterRepository) *ChartsService {
	return &ChartsService{clients: c, weightRepo: wr, waterRepo: wa}
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day     string       `json:"day"`
	WaterMl int          `json:"waterMl"`
	Weight  *WeightPoint `json:"weight"`
}

// WeightPoint is the optional weight value within a DayPoint.
type WeightPoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GetDaily returns per-day chart data for the last days days, with weights
// converted to the requested unit.
func (s *ChartsService) GetDaily(ctx context.Context, coachID int64, clientID uuid.UUID, days int, unit string) ([]DayPoint, error) {
	if err := validUnit(unit); err != nil {
		return nil, err
	}
	if _, err := loadClient(ctx, s.clients, coachID, clientID); err != nil {
		return nil, err
	}
	days = max(min(days, maxChartDays), 1)

	today := time.Now().In(time.Local)
	points := make([]DayPoint, 0, days)

	for i := days - 1; i >= 0; i-- {
		dayStr := today.AddDate(0, 0, -i).Format("2006-01-02")

		waterMl, err := s.waterRepo.WaterTotalForLocalDay(ctx, clientID, dayStr)
		if err != nil {
			return nil, err
		}

		entry, err := s.weightRepo.LatestWeighInForLocalDay(ctx, clientID, dayStr)
		if err != nil {
			return nil, err
		}

		var wp *WeightPoint
		if entry != nil {
			wp = &WeightPoint{Value: domain.ConvertWeight(entry.Value, entry.Unit, unit), Unit: unit}
		}

		points = append(points, DayPoint{Day: dayStr, WaterMl: waterMl, Weight: wp})
	}
	return points, nil
}
