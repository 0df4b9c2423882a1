package settings

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"paypulse/app/calculator"
	apperrors "paypulse/internal/errors"
	"paypulse/ports"
)

const (
	settingsKey      = "paypulse:settings"
	notificationsKey = "paypulse:notifications"
)

// Settings is the user-tunable configuration surface: the insurance
// rates applied by the calculator and the display preferences.
type Settings struct {
	InsuranceRates calculator.InsuranceRates `json:"insurance_rates"`
	CompanyName    string                    `json:"company_name"`
	FiscalYear     int                       `json:"fiscal_year"`
}

// Notification is one dashboard notification entry
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Service persists settings and notifications through the key-value
// port, same write-through discipline as the dataset store.
type Service struct {
	mu  sync.Mutex
	kv  ports.KeyValueStore
	now func() time.Time
}

func NewService(kv ports.KeyValueStore) *Service {
	return &Service{kv: kv, now: time.Now}
}

// Load returns the stored settings, falling back to defaults when
// nothing has been saved yet.
func (s *Service) Load(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) (Settings, error) {
	raw, err := s.kv.Get(ctx, settingsKey)
	if err != nil {
		return Settings{}, apperrors.Wrap(err, "failed to load settings")
	}
	if raw == nil {
		return defaultSettings(), nil
	}

	var settings Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Printf("[Settings] Stored settings unreadable, using defaults: %v", err)
		return defaultSettings(), nil
	}
	return settings, nil
}

// Save replaces the stored settings
func (s *Service) Save(ctx context.Context, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(settings)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode settings")
	}
	if err := s.kv.Set(ctx, settingsKey, raw); err != nil {
		return apperrors.PersistenceWrite(settingsKey, err)
	}
	log.Printf("[Settings] Saved settings for %q", settings.CompanyName)
	return nil
}

// Notifications returns all notifications, newest first
func (s *Service) Notifications(ctx context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadNotifications(ctx)
}

// Notify appends a new notification and returns it
func (s *Service) Notify(ctx context.Context, title, message, level string) (Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadNotifications(ctx)
	if err != nil {
		return Notification{}, err
	}

	entry := Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Level:     level,
		CreatedAt: s.now(),
	}
	entries = append(entries, entry)
	if err := s.saveNotifications(ctx, entries); err != nil {
		return Notification{}, err
	}
	return entry, nil
}

// MarkRead marks one notification as read
func (s *Service) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadNotifications(ctx)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Read = true
			return s.saveNotifications(ctx, entries)
		}
	}
	return apperrors.NotFound("notification")
}

// DeleteNotification removes one notification
func (s *Service) DeleteNotification(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadNotifications(ctx)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return apperrors.NotFound("notification")
	}
	return s.saveNotifications(ctx, kept)
}

func (s *Service) loadNotifications(ctx context.Context) ([]Notification, error) {
	raw, err := s.kv.Get(ctx, notificationsKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load notifications")
	}
	if raw == nil {
		return nil, nil
	}

	var entries []Notification
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode notifications")
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *Service) saveNotifications(ctx context.Context, entries []Notification) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode notifications")
	}
	if err := s.kv.Set(ctx, notificationsKey, raw); err != nil {
		return apperrors.PersistenceWrite(notificationsKey, err)
	}
	return nil
}

func defaultSettings() Settings {
	return Settings{
		InsuranceRates: calculator.DefaultRates(),
		FiscalYear:     time.Now().Year(),
	}
}
