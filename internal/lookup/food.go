package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/AlekSi/pointer"

	"github.com/vlkors/hydrobot/internal/errvalues"
)

const defaultFoodSearchURL = "https://world.openfoodfacts.org/cgi/search.pl"

const unknownProductName = "Неизвестный продукт"

type FoodClient struct {
	searchURL  string
	httpClient *http.Client
}

func NewFoodClient() *FoodClient {
	return &FoodClient{
		searchURL:  defaultFoodSearchURL,
		httpClient: &http.Client{Timeout: lookupTimeout},
	}
}

type foodSearchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100g *float64 `json:"energy-kcal_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// FoodByName ищет продукт в OpenFoodFacts и возвращает название и
// калорийность на 100 г первого результата. Если продукт не найден или
// у него нет энергетической ценности — errvalues.ErrProductNotFound;
// сетевые и прочие сбои возвращаются как есть, обернутыми.
func (c *FoodClient) FoodByName(ctx context.Context, name string) (*Food, error) {
	reqURL := fmt.Sprintf("%s?search_terms=%s&fields=product_name,nutriments&json=1",
		c.searchURL, url.QueryEscape(name))

	var resp foodSearchResponse
	if err := getJSON(ctx, c.httpClient, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("FoodClient.FoodByName: %w", err)
	}

	if len(resp.Products) == 0 {
		return nil, fmt.Errorf("FoodClient.FoodByName: %q: %w", name, errvalues.ErrProductNotFound)
	}

	first := resp.Products[0]

	calories := pointer.GetFloat64(first.Nutriments.EnergyKcal100g)
	if calories == 0 {
		// в выдаче попадаются продукты без калорийности
		return nil, fmt.Errorf("FoodClient.FoodByName: %q без калорийности: %w", name, errvalues.ErrProductNotFound)
	}

	displayName := first.ProductName
	if displayName == "" {
		displayName = unknownProductName
	}

	return &Food{
		Name:            displayName,
		CaloriesPer100g: calories,
	}, nil
}
