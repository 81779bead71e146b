package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	seededDays     = 10 // calendar days of data per country, ending yesterday
	viewsPerDaySE  = 3  // per-day pageviews seeded for se
	viewsPerDayNO  = 2  // per-day pageviews seeded for no
	requestedDays  = 15 // processing window requested from the server
	viewsPerDayAll = viewsPerDaySE + viewsPerDayNO
)

// ### End - fixed configs

type dailyEntry struct {
	Pageviews      int64   `json:"pageviews"`
	UniqueVisitors int64   `json:"unique_visitors"`
	TotalTime      float64 `json:"total_time"`
	Rolling7       int64   `json:"rolling_7"`
	Rolling28      int64   `json:"rolling_28"`
	Growth7        float64 `json:"growth_7"`
	Growth28       float64 `json:"growth_28"`
}

type latestDocument struct {
	Timestamp time.Time `json:"timestamp"`
	Data      struct {
		All struct {
			Daily map[string]dailyEntry `json:"daily"`
		} `json:"all"`
		ByCountry map[string]struct {
			Daily map[string]dailyEntry `json:"daily"`
		} `json:"by_country"`
	} `json:"data"`
}

// main runs the e2e scenario: 001_full_run_publish
//
// This scenario tests the end-to-end flow of a processing run: reading raw
// pageview documents from the file-backed document store, normalizing mixed
// timestamp encodings, bucketing into daily metrics, applying rolling windows,
// and publishing the combined result.
//
// What it tests:
//   - Triggering a synchronous run via POST /v1/runs
//   - Per-country daily pageview, unique visitor, and time-on-page totals
//   - Missing visitor IDs (absent and literal "null") collapsing into one
//     "unknown" visitor per day
//   - Rolling 7-day sums on both the per-country and combined series
//   - The combined series being the per-day sum across countries
//   - Full overwrite of processed_analytics/latest
//
// Prerequisites: the processor server must be running with doc_store.root_dir
// pointing at the directory given by DATA_DIR (default ./data).
func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	serverURL := os.Getenv("SERVER_URL")
	if serverURL == "" {
		serverURL = "http://localhost:8080"
	}

	days := seedDays()

	if err := seedCollections(dataDir, days); err != nil {
		fatalf("seeding failed: %v", err)
	}
	fmt.Printf("seeded %d days for se and no under %s\n", len(days), dataDir)

	if err := triggerRun(serverURL); err != nil {
		fatalf("run failed: %v", err)
	}

	latest, err := readLatest(dataDir)
	if err != nil {
		fatalf("reading published result failed: %v", err)
	}

	if err := validate(latest, days); err != nil {
		fatalf("validation failed: %v", err)
	}
	fmt.Println("scenario 001_full_run_publish passed")
}

// seedDays returns the seeded calendar days, oldest first, ending yesterday.
// Today is excluded so the scenario is stable when run close to midnight.
func seedDays() []time.Time {
	end := time.Now().UTC().AddDate(0, 0, -1)
	days := make([]time.Time, seededDays)
	for i := range days {
		d := end.AddDate(0, 0, -(seededDays - 1 - i))
		days[i] = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	return days
}

func seedCollections(dataDir string, days []time.Time) error {
	for _, day := range days {
		dayID := day.Format("20060102")

		// se: three views, visitors v1, v1, and a missing ID
		for n, doc := range []map[string]any{
			{"visitedTimestamp": day.Add(8 * time.Hour).Format(time.RFC3339), "dailyId": "v1", "timeOnPage": 30.0, "path": "/loppsidor/vasaloppet/"},
			{"visitedTimestamp": day.Add(12 * time.Hour).Format(time.RFC3339), "dailyId": "v1", "timeOnPage": 45.0, "path": "/loppkalender/"},
			{"visitedTimestamp": day.Add(20 * time.Hour).Format(time.RFC3339), "dailyId": "null", "timeOnPage": 15.0, "path": "/loppsidor/vasaloppet/"},
		} {
			if err := writeDocument(dataDir, "pageViews_se", fmt.Sprintf("%s-%d", dayID, n), doc); err != nil {
				return err
			}
		}

		// no: two views by distinct visitors
		for n, doc := range []map[string]any{
			{"visitedTimestamp": day.Add(9 * time.Hour).Format(time.RFC3339), "dailyId": "n1", "timeOnPage": 10.0, "path": "/lopssider/oslomaraton/"},
			{"visitedTimestamp": day.Add(10 * time.Hour).Format(time.RFC3339), "dailyId": "n2", "timeOnPage": 20.0, "path": "/terminliste/"},
		} {
			if err := writeDocument(dataDir, "pageViews_no", fmt.Sprintf("%s-%d", dayID, n), doc); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDocument(dataDir, collection, id string, fields map[string]any) error {
	dir := filepath.Join(dataDir, collection)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, id+".json"), raw, 0o644)
}

func triggerRun(serverURL string) error {
	body, _ := json.Marshal(map[string]any{
		"countries": []string{"se", "no"},
		"days":      requestedDays,
	})
	resp, err := http.Post(serverURL+"/v1/runs", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var runResponse struct {
		RunID              string `json:"run_id"`
		CountriesProcessed int    `json:"countries_processed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&runResponse); err != nil {
		return err
	}
	if runResponse.CountriesProcessed != 2 {
		return fmt.Errorf("expected 2 countries processed, got %d", runResponse.CountriesProcessed)
	}
	fmt.Printf("run %s completed\n", runResponse.RunID)
	return nil
}

func readLatest(dataDir string) (*latestDocument, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "processed_analytics", "latest.json"))
	if err != nil {
		return nil, err
	}
	var latest latestDocument
	if err := json.Unmarshal(raw, &latest); err != nil {
		return nil, err
	}
	return &latest, nil
}

func validate(latest *latestDocument, days []time.Time) error {
	se, ok := latest.Data.ByCountry["se"]
	if !ok {
		return fmt.Errorf("no se series in published result")
	}
	no, ok := latest.Data.ByCountry["no"]
	if !ok {
		return fmt.Errorf("no no series in published result")
	}

	for _, day := range days {
		key := day.Format("2006-01-02")

		seDay, ok := se.Daily[key]
		if !ok {
			return fmt.Errorf("se missing day %s", key)
		}
		if seDay.Pageviews != viewsPerDaySE {
			return fmt.Errorf("se %s: expected %d pageviews, got %d", key, viewsPerDaySE, seDay.Pageviews)
		}
		// v1 twice plus one missing ID collapsing to "unknown"
		if seDay.UniqueVisitors != 2 {
			return fmt.Errorf("se %s: expected 2 unique visitors, got %d", key, seDay.UniqueVisitors)
		}
		if seDay.TotalTime != 90 {
			return fmt.Errorf("se %s: expected 90 total time, got %v", key, seDay.TotalTime)
		}

		noDay, ok := no.Daily[key]
		if !ok {
			return fmt.Errorf("no missing day %s", key)
		}
		if noDay.Pageviews != viewsPerDayNO {
			return fmt.Errorf("no %s: expected %d pageviews, got %d", key, viewsPerDayNO, noDay.Pageviews)
		}

		allDay, ok := latest.Data.All.Daily[key]
		if !ok {
			return fmt.Errorf("all missing day %s", key)
		}
		if allDay.Pageviews != viewsPerDayAll {
			return fmt.Errorf("all %s: expected %d pageviews, got %d", key, viewsPerDayAll, allDay.Pageviews)
		}
	}

	// rolling sums are populated from the 7th populated day onward
	for i, day := range days {
		key := day.Format("2006-01-02")
		expected := int64(0)
		if i+1 >= 7 {
			expected = int64(7 * viewsPerDayAll)
		}
		if got := latest.Data.All.Daily[key].Rolling7; got != expected {
			return fmt.Errorf("all %s: expected rolling_7 %d, got %d", key, expected, got)
		}
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
