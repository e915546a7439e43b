// Package lookup — клиенты внешних сервисов: температура по городу
// (OpenWeatherMap) и калорийность продукта (OpenFoodFacts).
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultTemperatureC используется, когда температуру получить не удалось:
// недоступность погодного сервиса не должна блокировать настройку профиля.
const DefaultTemperatureC = 20.0

const lookupTimeout = 10 * time.Second

type Food struct {
	Name            string
	CaloriesPer100g float64
}

type TemperatureProvider interface {
	TemperatureByCity(ctx context.Context, city string) float64
}

type FoodProvider interface {
	FoodByName(ctx context.Context, name string) (*Food, error)
}

func getJSON(ctx context.Context, client *http.Client, reqURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("lookup: создание запроса: %w", err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("lookup: запрос не выполнен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("lookup: статус %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("lookup: разбор ответа: %w", err)
	}

	return nil
}
