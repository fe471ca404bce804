package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/catalog"
)

// Vehicle is the create-vehicle payload.
type Vehicle struct {
	Nickname     string `json:"nickname"`
	LicensePlate string `json:"license_plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
}

// ServiceShop is the create-shop payload.
type ServiceShop struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Item is one line of a seeded maintenance record.
type Item struct {
	Name      string  `json:"name"`
	Note      string  `json:"note,omitempty"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Record is the create-record payload.
type Record struct {
	VehicleID     string `json:"vehicle_id"`
	ServiceShopID string `json:"service_shop_id,omitempty"`
	Date          string `json:"date"`
	Mileage       int    `json:"mileage"`
	Notes         string `json:"notes,omitempty"`
	Items         []Item `json:"items"`
}

type seeder struct {
	apiURL string
	token  string
	client *http.Client
	faker  *gofakeit.Faker
}

func newSeeder(apiURL, token string, seed uint64) *seeder {
	return &seeder{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
		faker:  gofakeit.New(seed),
	}
}

func (s *seeder) post(ctx context.Context, path string, body any) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s payload: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+path, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("POST %s failed with status: %d", path, resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	id, ok := result["id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid id in %s response", path)
	}
	return id, nil
}

func (s *seeder) fakeVehicle() Vehicle {
	return Vehicle{
		Nickname:     s.faker.Adjective() + " " + s.faker.Animal(),
		LicensePlate: s.faker.Regex("[A-Z]{3}-[0-9]{4}"),
		Brand:        s.faker.CarMaker(),
		Model:        s.faker.CarModel(),
		Year:         s.faker.Number(2005, 2025),
	}
}

func (s *seeder) fakeShop() ServiceShop {
	return ServiceShop{
		Name:    s.faker.Company() + " Auto",
		Address: s.faker.Street() + ", " + s.faker.City(),
		Phone:   s.faker.Phone(),
	}
}

// fakeItems picks between one and four catalog items with plausible prices.
func (s *seeder) fakeItems(categories []catalog.Category) []Item {
	n := s.faker.Number(1, 4)
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		c := categories[s.faker.Number(0, len(categories)-1)]
		if len(c.Items) == 0 {
			continue
		}
		entry := c.Items[s.faker.Number(0, len(c.Items)-1)]
		item := Item{
			Name:      entry.Name,
			Quantity:  float64(s.faker.Number(1, 4)),
			UnitPrice: float64(s.faker.Number(2, 60) * 50),
		}
		if len(entry.CommonNotes) > 0 {
			item.Note = entry.CommonNotes[s.faker.Number(0, len(entry.CommonNotes)-1)]
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		items = append(items, Item{Name: "機油", Quantity: 4, UnitPrice: 250})
	}
	return items
}

// fakeHistory returns count records with increasing dates and mileage ending
// around today.
func (s *seeder) fakeHistory(vehicleID string, shopIDs []string, count int) []Record {
	categories := catalog.Categories()
	start := time.Now().AddDate(0, -2*count, 0)
	mileage := s.faker.Number(0, 30000)

	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		mileage += s.faker.Number(2000, 8000)
		r := Record{
			VehicleID: vehicleID,
			Date:      start.AddDate(0, 2*i, s.faker.Number(0, 20)).Format("2006-01-02"),
			Mileage:   mileage,
			Items:     s.fakeItems(categories),
		}
		if len(shopIDs) > 0 {
			r.ServiceShopID = shopIDs[s.faker.Number(0, len(shopIDs)-1)]
		}
		if s.faker.Bool() {
			r.Notes = s.faker.Sentence(6)
		}
		records = append(records, r)
	}
	return records
}

type seedStats struct {
	Vehicles int
	Shops    int
	Records  int
}

func (s *seeder) run(ctx context.Context, vehicles, shops, recordsPerVehicle int) seedStats {
	var stats seedStats

	shopIDs := make([]string, 0, shops)
	for i := 0; i < shops; i++ {
		id, err := s.post(ctx, "/shops", s.fakeShop())
		if err != nil {
			log.WithError(err).Error("Failed to create service shop")
			continue
		}
		shopIDs = append(shopIDs, id)
	}
	stats.Shops = len(shopIDs)

	for i := 0; i < vehicles; i++ {
		vehicle := s.fakeVehicle()
		vehicleID, err := s.post(ctx, "/vehicles", vehicle)
		if err != nil {
			log.WithError(err).Error("Failed to create vehicle")
			continue
		}
		stats.Vehicles++
		log.WithFields(log.Fields{
			"vehicle_id": vehicleID,
			"brand":      vehicle.Brand,
			"model":      vehicle.Model,
		}).Info("Created vehicle")

		for _, record := range s.fakeHistory(vehicleID, shopIDs, recordsPerVehicle) {
			if _, err := s.post(ctx, "/records", record); err != nil {
				log.WithError(err).WithField("vehicle_id", vehicleID).Error("Failed to create maintenance record")
				continue
			}
			stats.Records++
		}
	}
	return stats
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func main() {
	token := os.Getenv("SEED_AUTH_TOKEN")

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api"
	}

	seed := uint64(time.Now().UnixNano())
	if v := os.Getenv("SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			seed = n
		}
	}

	vehicles := envInt("SEED_VEHICLES", 3)
	shops := envInt("SEED_SHOPS", 2)
	records := envInt("SEED_RECORDS_PER_VEHICLE", 6)

	log.WithFields(log.Fields{
		"api_url":             apiURL,
		"vehicles":            vehicles,
		"shops":               shops,
		"records_per_vehicle": records,
	}).Info("Seeding demo data")

	stats := newSeeder(apiURL, token, seed).run(context.Background(), vehicles, shops, records)

	log.WithFields(log.Fields{
		"vehicles": stats.Vehicles,
		"shops":    stats.Shops,
		"records":  stats.Records,
	}).Info("Seeding completed")
	if stats.Vehicles == 0 && vehicles > 0 {
		log.Error("No vehicles created. Ensure SEED_AUTH_TOKEN is valid and API is reachable.")
		os.Exit(1)
	}
}
