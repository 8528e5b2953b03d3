package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/kingrea/fairway/internal/config"
	"github.com/kingrea/fairway/internal/logging"
	"github.com/kingrea/fairway/internal/round"
)

var sampleRounds = []round.Summary{
	{Total: 84, GIR: 7, Putts: 33, Doubles: 3, Penalties: 2, UpDowns: 3, Date: "10/1/2026"},
	{Total: 79, GIR: 10, Putts: 30, Doubles: 1, Penalties: 0, UpDowns: 4, Date: "10/8/2026"},
	{Total: 81, GIR: 9, Putts: 31, Doubles: 2, Penalties: 1, UpDowns: 2, Date: "10/15/2026"},
}

func backends(t *testing.T) map[string]func(dir string) Backend {
	t.Helper()
	return map[string]func(dir string) Backend{
		"file": func(dir string) Backend {
			b, err := NewFileBackend(dir)
			if err != nil {
				t.Fatalf("file backend: %v", err)
			}
			return b
		},
		"sqlite": func(dir string) Backend {
			b, err := NewSQLiteBackend(filepath.Join(dir, sqliteFileName))
			if err != nil {
				t.Fatalf("sqlite backend: %v", err)
			}
			return b
		},
	}
}

func TestAppendPersistsAcrossReopen(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			s, err := Open(open(dir), nil)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if s.Len() != 0 {
				t.Fatalf("fresh store has %d rounds", s.Len())
			}
			for _, r := range sampleRounds {
				if err := s.Append(r); err != nil {
					t.Fatalf("append: %v", err)
				}
			}
			if err := s.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			reopened, err := Open(open(dir), nil)
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer reopened.Close()
			if got := reopened.Rounds(); !reflect.DeepEqual(got, sampleRounds) {
				t.Fatalf("rounds = %+v, want %+v", got, sampleRounds)
			}
		})
	}
}

func TestSerializedFieldNames(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Open(b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Append(sampleRounds[0]); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, RoundsKey+".json"))
	if err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("stored payload is not a JSON array: %v", err)
	}
	want := []string{"date", "doubles", "gir", "penalties", "putts", "total", "upDowns"}
	var got []string
	for k := range raw[0] {
		got = append(got, k)
	}
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestLoadsHistoryWrittenByEarlierReleases(t *testing.T) {
	dir := t.TempDir()
	legacy := `[{"total":88,"gir":5,"putts":34,"doubles":4,"penalties":2,"upDowns":1,"date":"9/30/2026"}]`
	if err := os.WriteFile(filepath.Join(dir, "rounds.json"), []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}
	b, _ := NewFileBackend(dir)
	s, err := Open(b, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	last, ok := s.Last()
	if !ok || last.Total != 88 || last.Date != "9/30/2026" {
		t.Fatalf("unexpected last round: %+v (ok=%v)", last, ok)
	}
}

func TestCorruptHistoryFailsSoftAndIsPreserved(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			backend := open(dir)
			corrupt := []byte(`{"total": 80,`)
			if err := backend.Put(RoundsKey, corrupt); err != nil {
				t.Fatal(err)
			}
			s := &RoundStore{backend: backend, log: logging.Discard(), now: func() time.Time { return time.Unix(1700000000, 0) }}
			if err := s.load(); err != nil {
				t.Fatalf("load must fail soft, got %v", err)
			}
			if s.Len() != 0 {
				t.Fatalf("expected empty history, got %d rounds", s.Len())
			}
			saved, ok, err := backend.Get("rounds.corrupt-1700000000")
			if err != nil || !ok {
				t.Fatalf("corrupt payload not preserved: ok=%v err=%v", ok, err)
			}
			if string(saved) != string(corrupt) {
				t.Fatalf("preserved payload = %q", saved)
			}
			if err := s.Append(sampleRounds[0]); err != nil {
				t.Fatalf("append after corrupt load: %v", err)
			}
			backend.Close()
		})
	}
}

type failingBackend struct {
	putErr error
	getErr error
}

func (b failingBackend) Get(string) ([]byte, bool, error) { return nil, false, b.getErr }
func (b failingBackend) Put(string, []byte) error         { return b.putErr }
func (b failingBackend) Close() error                     { return nil }

func TestFileBackendPutReplacesWholeFile(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, payload := range []string{`[{"total":90}]`, `[]`} {
		if err := b.Put(RoundsKey, []byte(payload)); err != nil {
			t.Fatalf("put: %v", err)
		}
		got, ok, err := b.Get(RoundsKey)
		if err != nil || !ok || string(got) != payload {
			t.Fatalf("get = %q, %v, %v; want %q", got, ok, err, payload)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != RoundsKey+".json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("leftover files after put: %v", names)
	}
}

// unwritableBackend serves a fixed payload and rejects every write.
type unwritableBackend struct {
	data []byte
}

func (b unwritableBackend) Get(string) ([]byte, bool, error) { return b.data, true, nil }
func (b unwritableBackend) Put(string, []byte) error {
	return errors.New("read-only filesystem")
}
func (b unwritableBackend) Close() error { return nil }

func TestOpenFailsWhenCorruptHistoryCannotBePreserved(t *testing.T) {
	_, err := Open(unwritableBackend{data: []byte(`[{"total":`)}, nil)
	if err == nil {
		t.Fatalf("open must fail when the unreadable history cannot be backed up")
	}
	if !strings.Contains(err.Error(), "rounds.corrupt-") {
		t.Fatalf("error should name the backup key, got %v", err)
	}
}

func TestAppendRollsBackWhenSaveFails(t *testing.T) {
	boom := errors.New("disk full")
	s, err := Open(failingBackend{putErr: boom}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Append(sampleRounds[0]); !errors.Is(err, boom) {
		t.Fatalf("append error = %v, want %v", err, boom)
	}
	if s.Len() != 0 {
		t.Fatalf("failed append left %d rounds in memory", s.Len())
	}
}

func TestOpenReturnsBackendReadErrors(t *testing.T) {
	boom := errors.New("permission denied")
	if _, err := Open(failingBackend{getErr: boom}, nil); !errors.Is(err, boom) {
		t.Fatalf("open error = %v, want %v", err, boom)
	}
}

func TestHistoryAndLast(t *testing.T) {
	b, _ := NewFileBackend(t.TempDir())
	s, err := Open(b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Last(); ok {
		t.Fatalf("empty store must not report a last round")
	}
	if s.History() != nil {
		t.Fatalf("empty store history = %v", s.History())
	}
	for _, r := range sampleRounds {
		if err := s.Append(r); err != nil {
			t.Fatal(err)
		}
	}
	last, _ := s.Last()
	if last != sampleRounds[2] {
		t.Fatalf("last = %+v", last)
	}
	if got := s.History(); !reflect.DeepEqual(got, sampleRounds[:2]) {
		t.Fatalf("history = %+v", got)
	}
	rounds := s.Rounds()
	rounds[0].Total = 1
	if s.Rounds()[0].Total != sampleRounds[0].Total {
		t.Fatalf("Rounds must return a copy")
	}
}

func TestOpenBackendFollowsConfig(t *testing.T) {
	dataDir := t.TempDir()
	yaml := "version: 1\nstorage:\n  driver: sqlite\n  path: db\n"
	if err := os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.NewConfig(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	backend, err := OpenBackend(cfg)
	if err != nil {
		t.Fatalf("open backend: %v", err)
	}
	defer backend.Close()
	if _, ok := backend.(*SQLiteBackend); !ok {
		t.Fatalf("backend = %T, want *SQLiteBackend", backend)
	}
	if _, err := os.Stat(filepath.Join(dataDir, "db", sqliteFileName)); err != nil {
		t.Fatalf("expected database file: %v", err)
	}

	fileCfg, err := config.NewConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fileBackend, err := OpenBackend(fileCfg)
	if err != nil {
		t.Fatalf("open file backend: %v", err)
	}
	if _, ok := fileBackend.(*FileBackend); !ok {
		t.Fatalf("backend = %T, want *FileBackend", fileBackend)
	}
	if !strings.HasSuffix(fileCfg.StoragePath(), "data") {
		t.Fatalf("unexpected storage path %s", fileCfg.StoragePath())
	}
}
