package imf

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
)

func TestDataClient_FetchDataset(t *testing.T) {
	t.Run("flattens series attributes onto each observation", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			//nolint:errcheck // Test fixture write
			w.Write([]byte(`{"CompactData":{"DataSet":{"Series":[
				{"@FREQ":"A","@REF_AREA":"US","@INDICATOR":"LUR","@UNIT_MULT":"0","Obs":[
					{"@TIME_PERIOD":"2021","@OBS_VALUE":"5.4"},
					{"@TIME_PERIOD":"2022","@OBS_VALUE":"3.6"}
				]},
				{"@FREQ":"A","@REF_AREA":"BR","@INDICATOR":"LUR","@UNIT_MULT":"0","Obs":
					{"@TIME_PERIOD":"2021","@OBS_VALUE":13.2}
				}
			]}}}`))
		}))
		defer server.Close()

		client := NewDataClient(server.URL, 5*time.Second)

		rows, err := client.FetchDataset(context.Background(), DatasetQuery{
			Database:   "WEO",
			Indicators: []string{"LUR"},
			Countries:  []string{"US", "BR"},
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if gotPath != "/CompactData/WEO/A.US+BR.LUR" {
			t.Errorf("Expected key-based path, got %s", gotPath)
		}

		if len(rows) != 3 {
			t.Fatalf("Expected 3 rows, got %d", len(rows))
		}
		if rows[0]["@REF_AREA"] != "US" || rows[0]["@TIME_PERIOD"] != "2021" || rows[0]["@OBS_VALUE"] != "5.4" {
			t.Errorf("Expected series attributes merged into row, got %v", rows[0])
		}
		// Single-object Obs and bare-number values both decode
		if rows[2]["@REF_AREA"] != "BR" || rows[2]["@OBS_VALUE"] != "13.2" {
			t.Errorf("Expected single-object observation row, got %v", rows[2])
		}
	})

	t.Run("returns no rows for an empty dataset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			//nolint:errcheck // Test fixture write
			w.Write([]byte(`{"CompactData":{"DataSet":{}}}`))
		}))
		defer server.Close()

		client := NewDataClient(server.URL, 5*time.Second)

		rows, err := client.FetchDataset(context.Background(), DatasetQuery{Database: "WEO"})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("Expected no rows, got %d", len(rows))
		}
	})

	t.Run("wraps non-success statuses in upstream unavailability", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewDataClient(server.URL, 5*time.Second)

		_, err := client.FetchDataset(context.Background(), DatasetQuery{Database: "WEO"})
		if !errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			t.Errorf("Expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestDataClient_FetchCountries(t *testing.T) {
	t.Run("extracts the area codelist with stringified values", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/DataStructure/WEO" {
				t.Errorf("Expected /DataStructure/WEO, got %s", r.URL.Path)
			}
			//nolint:errcheck // Test fixture write
			w.Write([]byte(`{"Structure":{"CodeLists":{"CodeList":[
				{"@id":"CL_INDICATOR_WEO","Code":[{"@value":"LUR","Description":{"#text":"Unemployment rate"}}]},
				{"@id":"CL_AREA_WEO","Code":[
					{"@value":"US","Description":{"#text":"United States"}},
					{"@value":111,"Description":"Brazil"}
				]}
			]}}}`))
		}))
		defer server.Close()

		client := NewDataClient(server.URL, 5*time.Second)

		rows, err := client.FetchCountries(context.Background(), "WEO")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(rows) != 2 {
			t.Fatalf("Expected 2 country rows, got %d", len(rows))
		}
		if rows[0]["input_code"] != "US" || rows[0]["description"] != "United States" {
			t.Errorf("Expected first area code, got %v", rows[0])
		}
		if rows[1]["input_code"] != "111" || rows[1]["description"] != "Brazil" {
			t.Errorf("Expected stringified code and flat description, got %v", rows[1])
		}
	})

	t.Run("fails when no area codelist is present", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			//nolint:errcheck // Test fixture write
			w.Write([]byte(`{"Structure":{"CodeLists":{"CodeList":[]}}}`))
		}))
		defer server.Close()

		client := NewDataClient(server.URL, 5*time.Second)

		if _, err := client.FetchCountries(context.Background(), "WEO"); err == nil {
			t.Error("Expected an error for a missing area codelist")
		}
	})
}
