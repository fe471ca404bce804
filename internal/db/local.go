package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ukydev/car-maintenance/internal/models"
)

// localUser keeps the password hash, which models.User hides from JSON.
type localUser struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

type localData struct {
	Users        []localUser                `json:"users"`
	Vehicles     []models.Vehicle           `json:"vehicles"`
	ServiceShops []models.ServiceShop       `json:"service_shops"`
	Records      []models.MaintenanceRecord `json:"maintenance_records"`
}

func (d localData) clone() localData {
	return localData{
		Users:        slices.Clone(d.Users),
		Vehicles:     slices.Clone(d.Vehicles),
		ServiceShops: slices.Clone(d.ServiceShops),
		Records:      slices.Clone(d.Records),
	}
}

// LocalStore keeps every entity of every identity in a single JSON file.
// It implements both Store and UserCollection and is meant for single-host,
// demo or offline use only.
type LocalStore struct {
	path string
	mu   sync.RWMutex
	data localData
}

// OpenLocalStore loads path, starting empty when the file does not exist yet.
func OpenLocalStore(path string) (*LocalStore, error) {
	s := &LocalStore{path: path}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local store: %w", err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode local store %s: %w", path, err)
	}
	return s, nil
}

// Path returns the backing file location.
func (s *LocalStore) Path() string {
	return s.path
}

// commit applies mutate and persists the result. On any error the in-memory
// state is rolled back. Callers must not hold the lock.
func (s *LocalStore) commit(mutate func(d *localData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.data.clone()
	if err := mutate(&s.data); err != nil {
		s.data = before
		return err
	}
	if err := s.flush(); err != nil {
		s.data = before
		return err
	}
	return nil
}

func (s *LocalStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local store dir: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".local-store-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write local store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close local store: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

func localStamp(id *string, created, updated *time.Time) {
	now := time.Now()
	if *id == "" {
		*id = uuid.NewString()
	}
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

func cloneRecord(r models.MaintenanceRecord) models.MaintenanceRecord {
	r.Items = slices.Clone(r.Items)
	return r
}

// InsertVehicle stores a vehicle.
func (s *LocalStore) InsertVehicle(_ context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	localStamp(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	err := s.commit(func(d *localData) error {
		d.Vehicles = append(d.Vehicles, vehicle)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// FindVehicles lists the identity's vehicles, newest first.
func (s *LocalStore) FindVehicles(_ context.Context, userID string) ([]models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Vehicle{}
	for _, v := range s.data.Vehicles {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// FindVehicleByID finds a vehicle by its ID.
func (s *LocalStore) FindVehicleByID(_ context.Context, userID, id string) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.data.Vehicles, func(v models.Vehicle) bool { return v.ID == id && v.UserID == userID })
	if i < 0 {
		return nil, fmt.Errorf("vehicle %s: %w", id, models.ErrNotFound)
	}
	v := s.data.Vehicles[i]
	return &v, nil
}

// UpdateVehicle overwrites the mutable fields of a vehicle.
func (s *LocalStore) UpdateVehicle(_ context.Context, userID, id string, vehicle models.Vehicle) (*models.Vehicle, error) {
	var updated models.Vehicle
	err := s.commit(func(d *localData) error {
		i := indexOf(d.Vehicles, func(v models.Vehicle) bool { return v.ID == id && v.UserID == userID })
		if i < 0 {
			return fmt.Errorf("vehicle %s: %w", id, models.ErrNotFound)
		}
		current := d.Vehicles[i]
		current.Nickname = vehicle.Nickname
		current.LicensePlate = vehicle.LicensePlate
		current.Brand = vehicle.Brand
		current.Model = vehicle.Model
		current.Year = vehicle.Year
		current.UpdatedAt = time.Now()
		d.Vehicles[i] = current
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVehicle deletes a vehicle by its ID.
func (s *LocalStore) DeleteVehicle(_ context.Context, userID, id string) error {
	return s.commit(func(d *localData) error {
		i := indexOf(d.Vehicles, func(v models.Vehicle) bool { return v.ID == id && v.UserID == userID })
		if i < 0 {
			return fmt.Errorf("vehicle %s: %w", id, models.ErrNotFound)
		}
		d.Vehicles = slices.Delete(d.Vehicles, i, i+1)
		return nil
	})
}

// InsertServiceShop stores a service shop.
func (s *LocalStore) InsertServiceShop(_ context.Context, shop models.ServiceShop) (*models.ServiceShop, error) {
	localStamp(&shop.ID, &shop.CreatedAt, &shop.UpdatedAt)
	err := s.commit(func(d *localData) error {
		d.ServiceShops = append(d.ServiceShops, shop)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// FindServiceShops lists the identity's service shops, newest first.
func (s *LocalStore) FindServiceShops(_ context.Context, userID string) ([]models.ServiceShop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ServiceShop{}
	for _, shop := range s.data.ServiceShops {
		if shop.UserID == userID {
			out = append(out, shop)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// FindServiceShopByID finds a service shop by its ID.
func (s *LocalStore) FindServiceShopByID(_ context.Context, userID, id string) (*models.ServiceShop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.data.ServiceShops, func(shop models.ServiceShop) bool { return shop.ID == id && shop.UserID == userID })
	if i < 0 {
		return nil, fmt.Errorf("service shop %s: %w", id, models.ErrNotFound)
	}
	shop := s.data.ServiceShops[i]
	return &shop, nil
}

// UpdateServiceShop overwrites the mutable fields of a service shop.
func (s *LocalStore) UpdateServiceShop(_ context.Context, userID, id string, shop models.ServiceShop) (*models.ServiceShop, error) {
	var updated models.ServiceShop
	err := s.commit(func(d *localData) error {
		i := indexOf(d.ServiceShops, func(sh models.ServiceShop) bool { return sh.ID == id && sh.UserID == userID })
		if i < 0 {
			return fmt.Errorf("service shop %s: %w", id, models.ErrNotFound)
		}
		current := d.ServiceShops[i]
		current.Name = shop.Name
		current.Address = shop.Address
		current.Phone = shop.Phone
		current.Notes = shop.Notes
		current.UpdatedAt = time.Now()
		d.ServiceShops[i] = current
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteServiceShop deletes a service shop by its ID.
func (s *LocalStore) DeleteServiceShop(_ context.Context, userID, id string) error {
	return s.commit(func(d *localData) error {
		i := indexOf(d.ServiceShops, func(sh models.ServiceShop) bool { return sh.ID == id && sh.UserID == userID })
		if i < 0 {
			return fmt.Errorf("service shop %s: %w", id, models.ErrNotFound)
		}
		d.ServiceShops = slices.Delete(d.ServiceShops, i, i+1)
		return nil
	})
}

// InsertMaintenance stores a maintenance record.
func (s *LocalStore) InsertMaintenance(_ context.Context, record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	localStamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	record = cloneRecord(record)
	err := s.commit(func(d *localData) error {
		d.Records = append(d.Records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := cloneRecord(record)
	return &out, nil
}

// matches reports whether r satisfies every constraint of filter.
func matches(r models.MaintenanceRecord, userID string, filter models.MaintenanceFilter) bool {
	if r.UserID != userID {
		return false
	}
	if filter.VehicleID != "" && r.VehicleID != filter.VehicleID {
		return false
	}
	if !filter.From.IsZero() && r.Date.Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && r.Date.After(filter.To) {
		return false
	}
	return true
}

// FindMaintenance lists the identity's maintenance records, latest date first.
func (s *LocalStore) FindMaintenance(_ context.Context, userID string, filter models.MaintenanceFilter) ([]models.MaintenanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.MaintenanceRecord{}
	for _, r := range s.data.Records {
		if matches(r, userID, filter) {
			out = append(out, cloneRecord(r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// FindMaintenanceByID finds a maintenance record by its ID.
func (s *LocalStore) FindMaintenanceByID(_ context.Context, userID, id string) (*models.MaintenanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.data.Records, func(r models.MaintenanceRecord) bool { return r.ID == id && r.UserID == userID })
	if i < 0 {
		return nil, fmt.Errorf("maintenance record %s: %w", id, models.ErrNotFound)
	}
	r := cloneRecord(s.data.Records[i])
	return &r, nil
}

// ReplaceMaintenance swaps the whole stored record for record.
func (s *LocalStore) ReplaceMaintenance(_ context.Context, userID, id string, record models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	record = cloneRecord(record)
	record.ID = id
	record.UserID = userID
	record.UpdatedAt = time.Now()
	err := s.commit(func(d *localData) error {
		i := indexOf(d.Records, func(r models.MaintenanceRecord) bool { return r.ID == id && r.UserID == userID })
		if i < 0 {
			return fmt.Errorf("maintenance record %s: %w", id, models.ErrNotFound)
		}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = d.Records[i].CreatedAt
		}
		d.Records[i] = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := cloneRecord(record)
	return &out, nil
}

// DeleteMaintenance deletes a maintenance record by its ID.
func (s *LocalStore) DeleteMaintenance(_ context.Context, userID, id string) error {
	return s.commit(func(d *localData) error {
		i := indexOf(d.Records, func(r models.MaintenanceRecord) bool { return r.ID == id && r.UserID == userID })
		if i < 0 {
			return fmt.Errorf("maintenance record %s: %w", id, models.ErrNotFound)
		}
		d.Records = slices.Delete(d.Records, i, i+1)
		return nil
	})
}

// InsertUser stores a new user. Usernames and emails must be unique.
func (s *LocalStore) InsertUser(_ context.Context, user models.User) (*models.User, error) {
	localStamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	user.IsActive = true
	err := s.commit(func(d *localData) error {
		for _, u := range d.Users {
			if u.Username == user.Username || u.Email == user.Email {
				return fmt.Errorf("user %s already exists", user.Username)
			}
		}
		d.Users = append(d.Users, localUser{User: user, PasswordHash: user.PasswordHash})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *LocalStore) findUser(match func(models.User) bool, key string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.data.Users, func(u localUser) bool { return match(u.User) })
	if i < 0 {
		return nil, fmt.Errorf("user %s: %w", key, models.ErrNotFound)
	}
	user := s.data.Users[i].User
	user.PasswordHash = s.data.Users[i].PasswordHash
	return &user, nil
}

// FindUserByID finds a user by their ID
func (s *LocalStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return u.ID == id }, id)
}

// FindUserByUsername finds a user by their username
func (s *LocalStore) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return u.Username == username }, username)
}

// FindUserByEmail finds a user by their email
func (s *LocalStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return u.Email == email }, email)
}

// UpdateLastLogin updates the last login time for a user
func (s *LocalStore) UpdateLastLogin(_ context.Context, id string) error {
	return s.commit(func(d *localData) error {
		i := indexOf(d.Users, func(u localUser) bool { return u.ID == id })
		if i < 0 {
			return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
		}
		now := time.Now()
		d.Users[i].LastLogin = &now
		d.Users[i].UpdatedAt = now
		return nil
	})
}
