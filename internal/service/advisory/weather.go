package advisory

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
)

var weatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Partly Cloudy"}

// WeatherForecast returns a 7-day outlook. The configured upstream provider
// is preferred; the synthetic generator covers the unconfigured and
// upstream-failure cases.
func (s *Service) WeatherForecast(ctx context.Context, location string) (models.WeatherForecast, error) {
	if strings.TrimSpace(location) == "" {
		return models.WeatherForecast{}, errs.Validation("location is required")
	}

	if s.weather != nil {
		forecast, err := s.weather.Forecast(ctx, location)
		if err == nil {
			return *forecast, nil
		}
		s.logger.Warn("weather upstream failed, using synthetic forecast", zap.String("location", location), zap.Error(err))
	}

	return s.syntheticForecast(location), nil
}

func (s *Service) syntheticForecast(location string) models.WeatherForecast {
	start := s.now()
	days := make([]models.DayForecast, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, models.DayForecast{
			Day:       start.Add(time.Duration(i) * 24 * time.Hour).Format("Mon"),
			Temp:      s.intBetween(25, 35),
			Condition: s.pick(weatherConditions),
			Rainfall:  s.intn(30),
			Humidity:  s.intBetween(60, 90),
			WindSpeed: s.intBetween(5, 20),
		})
	}

	var alerts []string
	for _, day := range days {
		if day.Rainfall > 20 {
			alerts = append(alerts, "Heavy rainfall expected - protect crops")
			break
		}
	}

	return models.WeatherForecast{
		Location: location,
		Forecast: days,
		Alerts:   alerts,
	}
}
