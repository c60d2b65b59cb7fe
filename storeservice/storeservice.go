package storeservice

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/keybase/go-keychain"
	"github.com/wailsapp/wails/v3/pkg/application"
)

const (
	keychainService = "com.studypilot.app"
	storeFileName   = "store.json"
)

// StoreService is the persistent key-value store exposed to the frontend.
// Plain values live in a JSON file under the user config directory;
// secrets go to the OS keychain and never touch disk.
type StoreService struct {
	App *application.App

	mu        sync.RWMutex
	values    map[string]any
	secrets   map[string]string // used only when the keychain is disabled
	storePath string
}

// keychainDisabled lets tests (and keychain-less CI) fall back to an
// in-memory secret store.
func keychainDisabled() bool {
	return os.Getenv("STUDYPILOT_SKIP_KEYCHAIN") == "1"
}

func NewStoreService() *StoreService {
	s := &StoreService{
		values:    make(map[string]any),
		secrets:   make(map[string]string),
		storePath: resolveStorePath(),
	}
	s.load()
	return s
}

func (s *StoreService) SetApp(app *application.App) {
	s.App = app
}

func resolveStorePath() string {
	if override := os.Getenv("STUDYPILOT_STORE_PATH"); override != "" {
		return override
	}

	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		return storeFileName
	}

	appDir := filepath.Join(configDir, "StudyPilot")
	if mkErr := os.MkdirAll(appDir, 0o755); mkErr != nil {
		return storeFileName
	}

	return filepath.Join(appDir, storeFileName)
}

// ====== Values ======

// Get returns the stored value for key.
func (s *StoreService) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// GetString returns the stored value for key if it is a string, or "".
func (s *StoreService) GetString(key string) string {
	value, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return str
}

// Set stores a value and persists the store to disk.
func (s *StoreService) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.emitUpdated(key)
	return nil
}

// Delete removes a key and persists the store to disk. Deleting a key
// that is not present is harmless.
func (s *StoreService) Delete(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.emitUpdated(key)
	return nil
}

// Keys lists the stored keys in no particular order.
func (s *StoreService) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	return keys
}

func (s *StoreService) emitUpdated(key string) {
	if s.App == nil {
		return
	}
	s.App.EmitEvent("Backend:StoreUpdated", key)
}

// ====== Persistence ======

func (s *StoreService) load() {
	if s.storePath == "" {
		s.storePath = resolveStorePath()
	}

	data, err := os.ReadFile(s.storePath)
	if err != nil {
		return
	}

	var loaded map[string]any
	if err := json.Unmarshal(data, &loaded); err != nil {
		// Keep the broken file for inspection, then start fresh so a
		// corrupt store can never wedge startup.
		backup := fmt.Sprintf("%s.corrupt-%d", s.storePath, time.Now().UnixNano())
		_ = os.Rename(s.storePath, backup)
		s.mu.Lock()
		_ = s.saveLocked()
		s.mu.Unlock()
		return
	}
	if loaded == nil {
		// A file holding JSON null decodes into a nil map without error;
		// writes must still land in a real map.
		loaded = make(map[string]any)
	}

	s.mu.Lock()
	s.values = loaded
	s.mu.Unlock()
}

func (s *StoreService) saveLocked() error {
	if s.storePath == "" {
		s.storePath = resolveStorePath()
	}
	_ = os.MkdirAll(filepath.Dir(s.storePath), 0o755)

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.storePath, data, 0o644)
}

// ====== Secrets ======

// SetSecret stores a secret in the OS keychain under the given label.
func (s *StoreService) SetSecret(label, value string) error {
	if keychainDisabled() {
		s.mu.Lock()
		s.secrets[label] = value
		s.mu.Unlock()
		return nil
	}
	return updateSecret(label, value)
}

// GetSecret loads a secret from the OS keychain.
func (s *StoreService) GetSecret(label string) (string, error) {
	if keychainDisabled() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		value, ok := s.secrets[label]
		if !ok {
			return "", fmt.Errorf("secret not found for %s", label)
		}
		return value, nil
	}
	return loadSecret(label)
}

// ClearSecret removes a secret from the OS keychain.
func (s *StoreService) ClearSecret(label string) error {
	if keychainDisabled() {
		s.mu.Lock()
		delete(s.secrets, label)
		s.mu.Unlock()
		return nil
	}
	return clearSecret(label)
}

// ====== Keychain Helpers ======

func saveSecret(label, value string) error {
	item := keychain.NewItem()
	item.SetSecClass(keychain.SecClassGenericPassword)
	item.SetService(keychainService)
	item.SetAccount(label)
	item.SetLabel(label)
	item.SetData([]byte(value))
	item.SetAccessible(keychain.AccessibleWhenUnlocked)
	item.SetSynchronizable(keychain.SynchronizableNo)
	return keychain.AddItem(item)
}

func loadSecret(label string) (string, error) {
	query := keychain.NewItem()
	query.SetSecClass(keychain.SecClassGenericPassword)
	query.SetService(keychainService)
	query.SetAccount(label)
	query.SetReturnData(true)
	query.SetMatchLimit(keychain.MatchLimitOne)

	results, err := keychain.QueryItem(query)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("secret not found for %s", label)
	}
	return string(results[0].Data), nil
}

func updateSecret(label, value string) error {
	_ = clearSecret(label)
	return saveSecret(label, value)
}

func clearSecret(label string) error {
	item := keychain.NewItem()
	item.SetSecClass(keychain.SecClassGenericPassword)
	item.SetService(keychainService)
	item.SetAccount(label)
	return keychain.DeleteItem(item)
}
