package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/vlkors/hydrobot/internal/errvalues"
)

const (
	defaultGeoURL     = "http://api.openweathermap.org/geo/1.0/direct"
	defaultWeatherURL = "http://api.openweathermap.org/data/2.5/weather"
)

type WeatherClient struct {
	apiKey     string
	geoURL     string
	weatherURL string
	httpClient *http.Client
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:     apiKey,
		geoURL:     defaultGeoURL,
		weatherURL: defaultWeatherURL,
		httpClient: &http.Client{Timeout: lookupTimeout},
	}
}

// TemperatureByCity возвращает текущую температуру в городе в градусах
// Цельсия. При любой ошибке — город не найден, сервис недоступен, битый
// ответ — возвращает DefaultTemperatureC и никогда не отдает ошибку наверх.
func (c *WeatherClient) TemperatureByCity(ctx context.Context, city string) float64 {
	lat, lon, err := c.coordinates(ctx, city)
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("координаты не получены, берем температуру по умолчанию")
		return DefaultTemperatureC
	}

	temp, err := c.currentTemperature(ctx, lat, lon)
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("температура не получена, берем значение по умолчанию")
		return DefaultTemperatureC
	}

	return temp
}

type geoEntry struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

func (c *WeatherClient) coordinates(ctx context.Context, city string) (float64, float64, error) {
	reqURL := fmt.Sprintf("%s?q=%s&appid=%s", c.geoURL, url.QueryEscape(city), c.apiKey)

	var entries []geoEntry
	if err := getJSON(ctx, c.httpClient, reqURL, &entries); err != nil {
		return 0, 0, fmt.Errorf("WeatherClient.coordinates: %w", err)
	}

	if len(entries) == 0 {
		return 0, 0, fmt.Errorf("WeatherClient.coordinates: %q: %w", city, errvalues.ErrCityNotFound)
	}

	first := entries[0]
	if first.Lat == nil || first.Lon == nil {
		return 0, 0, fmt.Errorf("WeatherClient.coordinates: пустые координаты для %q", city)
	}

	return *first.Lat, *first.Lon, nil
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (c *WeatherClient) currentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	reqURL := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=metric", c.weatherURL, lat, lon, c.apiKey)

	var resp weatherResponse
	if err := getJSON(ctx, c.httpClient, reqURL, &resp); err != nil {
		return 0, fmt.Errorf("WeatherClient.currentTemperature: %w", err)
	}

	return resp.Main.Temp, nil
}
