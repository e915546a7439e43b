package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testWeatherClient(t *testing.T, geoHandler, weatherHandler http.HandlerFunc) *WeatherClient {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/geo", geoHandler)
	mux.HandleFunc("/weather", weatherHandler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &WeatherClient{
		apiKey:     "test-key",
		geoURL:     srv.URL + "/geo",
		weatherURL: srv.URL + "/weather",
		httpClient: srv.Client(),
	}
}

func TestTemperatureByCity(t *testing.T) {
	client := testWeatherClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Казань", r.URL.Query().Get("q"))
			assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			w.Write([]byte(`[{"lat":55.79,"lon":49.11}]`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			assert.NotEmpty(t, r.URL.Query().Get("lat"))
			assert.NotEmpty(t, r.URL.Query().Get("lon"))

			w.Write([]byte(`{"main":{"temp":28.5}}`))
		},
	)

	temp := client.TemperatureByCity(context.Background(), "Казань")
	assert.InDelta(t, 28.5, temp, 1e-9)
}

func TestTemperatureByCityNotFound(t *testing.T) {
	client := testWeatherClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("запрос погоды не должен выполняться без координат")
		},
	)

	temp := client.TemperatureByCity(context.Background(), "Нигдеград")
	assert.InDelta(t, DefaultTemperatureC, temp, 1e-9)
}

func TestTemperatureByCityGeoError(t *testing.T) {
	client := testWeatherClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("запрос погоды не должен выполняться после ошибки геокодера")
		},
	)

	temp := client.TemperatureByCity(context.Background(), "Казань")
	assert.InDelta(t, DefaultTemperatureC, temp, 1e-9)
}

func TestTemperatureByCityWeatherError(t *testing.T) {
	client := testWeatherClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"lat":55.79,"lon":49.11}]`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`не json`))
		},
	)

	temp := client.TemperatureByCity(context.Background(), "Казань")
	assert.InDelta(t, DefaultTemperatureC, temp, 1e-9)
}

func TestTemperatureByCityMissingCoordinates(t *testing.T) {
	client := testWeatherClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"name":"Казань"}]`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("запрос погоды не должен выполняться без координат")
		},
	)

	temp := client.TemperatureByCity(context.Background(), "Казань")
	assert.InDelta(t, DefaultTemperatureC, temp, 1e-9)
}
