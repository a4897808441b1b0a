package store

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStoreGetSetDelete(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on missing key: expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ThemeKey, []byte("light")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := s.Get(ThemeKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "light" {
		t.Errorf("Get returned %q, want %q", got, "light")
	}

	if !s.Has(ThemeKey) {
		t.Error("Has returned false for existing key")
	}

	if err := s.Delete(ThemeKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if s.Has(ThemeKey) {
		t.Error("Has returned true after Delete")
	}

	// Deleting a missing key is not an error
	if err := s.Delete(ThemeKey); err != nil {
		t.Errorf("Delete on missing key failed: %v", err)
	}
}

func TestSaveRecordRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	content := json.RawMessage(`{"type":"doc","content":[{"type":"paragraph"}]}`)
	if err := s.SaveContent(content); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	record, err := s.LoadContent()
	if err != nil {
		t.Fatalf("LoadContent failed: %v", err)
	}

	if string(record.Content) != string(content) {
		t.Errorf("Content mismatch: got %s, want %s", record.Content, content)
	}
	if record.Version != SaveVersion {
		t.Errorf("Version = %q, want %q", record.Version, SaveVersion)
	}
	if record.Timestamp == 0 {
		t.Error("Timestamp was not set")
	}
}

func TestLoadContentCorrupt(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := s.Set(ContentKey, []byte("{not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := s.LoadContent(); err == nil {
		t.Error("LoadContent on corrupt record: expected error, got nil")
	}
}

func TestSettingsDefaults(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	settings, err := s.ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.Autosave.DebounceMs != 2000 {
		t.Errorf("default DebounceMs = %d, want 2000", settings.Autosave.DebounceMs)
	}
	if settings.UI.DefaultTheme != "dark" {
		t.Errorf("default theme = %q, want dark", settings.UI.DefaultTheme)
	}

	settings.UI.DefaultTheme = "light"
	settings.Autosave.DebounceMs = 500
	if err := s.WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	reloaded, err := s.ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings after write failed: %v", err)
	}
	if reloaded.UI.DefaultTheme != "light" || reloaded.Autosave.DebounceMs != 500 {
		t.Errorf("reloaded settings did not round-trip: %+v", reloaded)
	}
}
