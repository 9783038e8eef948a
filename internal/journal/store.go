package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"

	"github.com/tarigelamin1997/tradesense-sub009/internal/logging"
)

// SchemaVersion is written into every journal file. Files whose version
// falls outside supportedSchema are refused rather than silently
// misinterpreted.
const SchemaVersion = "1.0.0"

// DefaultAccount is the account used when the caller does not name one.
const DefaultAccount = "default"

// journalFilePerm keeps journal files private to the user.
const journalFilePerm = 0o600

// Store errors.
var (
	ErrTradeNotFound        = errors.New("trade not found")
	ErrUnsupportedSchema    = errors.New("unsupported journal schema version")
	ErrDuplicateTrade       = errors.New("trade already exists")
	supportedSchema         = mustConstraint("^1.0")
	errMissingSchemaVersion = errors.New("journal file has no schema_version")
)

func mustConstraint(expr string) *semver.Constraints {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// journalFile is the on-disk shape of one account's journal.
type journalFile struct {
	SchemaVersion string  `json:"schema_version"`
	Account       string  `json:"account"`
	Trades        []Trade `json:"trades"`
}

// Store is a file-backed trade journal. Each account persists to its own
// JSON file under dir; all files load concurrently on Open.
//
// Store is safe for concurrent use.
type Store struct {
	dir string

	mu       sync.RWMutex
	accounts map[string][]Trade
}

// Open loads every journal file under dir, creating the directory if it
// does not exist yet. A directory with no journal files yields an empty
// store, not an error.
func Open(ctx context.Context, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating journal directory %s: %w", dir, err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scanning journal directory %s: %w", dir, err)
	}

	s := &Store{
		dir:      dir,
		accounts: make(map[string][]Trade, len(paths)),
	}

	g, ctx := errgroup.WithContext(ctx)
	var loadMu sync.Mutex

	for _, path := range paths {
		path := path
		g.Go(func() error {
			file, loadErr := loadJournalFile(path)
			if loadErr != nil {
				return loadErr
			}

			account := file.Account
			if account == "" {
				account = accountFromPath(path)
			}

			logging.FromContext(ctx).Debug().
				Str("component", "journal").
				Str("account", account).
				Int("trades", len(file.Trades)).
				Msg("journal file loaded")

			loadMu.Lock()
			s.accounts[account] = file.Trades
			loadMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

func loadJournalFile(path string) (*journalFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading journal file %s: %w", path, err)
	}

	var file journalFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing journal file %s: %w", path, err)
	}

	if file.SchemaVersion == "" {
		return nil, fmt.Errorf("%w: %s", errMissingSchemaVersion, path)
	}
	ver, err := semver.NewVersion(file.SchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("parsing schema version in %s: %w", path, err)
	}
	if !supportedSchema.Check(ver) {
		return nil, fmt.Errorf("%w: %s requires %s, this build supports %s",
			ErrUnsupportedSchema, path, file.SchemaVersion, supportedSchema)
	}

	return &file, nil
}

func accountFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Accounts returns the known account names, sorted.
func (s *Store) Accounts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every trade across all accounts, newest entry first. The
// returned slice is a copy; callers may sort or filter it freely.
func (s *Store) List() []Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var trades []Trade
	for _, account := range s.accounts {
		trades = append(trades, account...)
	}
	sort.Slice(trades, func(i, j int) bool {
		if trades[i].EntryTime.Equal(trades[j].EntryTime) {
			return trades[i].ID > trades[j].ID
		}
		return trades[i].EntryTime.After(trades[j].EntryTime)
	})
	return trades
}

// ListAccount returns the trades for one account, newest entry first.
func (s *Store) ListAccount(account string) []Trade {
	s.mu.RLock()
	trades := append([]Trade(nil), s.accounts[account]...)
	s.mu.RUnlock()

	sort.Slice(trades, func(i, j int) bool {
		return trades[i].EntryTime.After(trades[j].EntryTime)
	})
	return trades
}

// Get returns the trade with the given ID.
func (s *Store) Get(id string) (Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		for _, trade := range account {
			if trade.ID == id {
				return trade, nil
			}
		}
	}
	return Trade{}, fmt.Errorf("%w: %s", ErrTradeNotFound, id)
}

// Add validates and persists a new trade. A missing ID or account is
// filled in; a duplicate ID is rejected.
func (s *Store) Add(t Trade) (Trade, error) {
	if t.ID == "" {
		t.ID = NewTradeID()
	}
	if t.Account == "" {
		t.Account = DefaultAccount
	}
	if err := t.Validate(); err != nil {
		return Trade{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		for _, existing := range account {
			if existing.ID == t.ID {
				return Trade{}, fmt.Errorf("%w: %s", ErrDuplicateTrade, t.ID)
			}
		}
	}

	s.accounts[t.Account] = append(s.accounts[t.Account], t)
	if err := s.saveAccountLocked(t.Account); err != nil {
		// Keep memory and disk in step: undo the append.
		trades := s.accounts[t.Account]
		if len(trades) == 1 {
			delete(s.accounts, t.Account)
		} else {
			s.accounts[t.Account] = trades[:len(trades)-1]
		}
		return Trade{}, err
	}
	return t, nil
}

// Update replaces the stored trade with the same ID.
func (s *Store) Update(t Trade) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for account, trades := range s.accounts {
		for i, existing := range trades {
			if existing.ID == t.ID {
				t.Account = account
				trades[i] = t
				if err := s.saveAccountLocked(account); err != nil {
					trades[i] = existing
					return err
				}
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrTradeNotFound, t.ID)
}

// Delete removes the trade with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for account, trades := range s.accounts {
		for i, existing := range trades {
			if existing.ID == id {
				// Build the shrunken slice fresh so the original survives
				// intact if the write fails.
				remaining := make([]Trade, 0, len(trades)-1)
				remaining = append(remaining, trades[:i]...)
				remaining = append(remaining, trades[i+1:]...)

				s.accounts[account] = remaining
				if err := s.saveAccountLocked(account); err != nil {
					s.accounts[account] = trades
					return err
				}
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrTradeNotFound, id)
}

// Len returns the total number of trades across all accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, account := range s.accounts {
		n += len(account)
	}
	return n
}

// saveAccountLocked writes one account's journal file. Caller holds mu.
func (s *Store) saveAccountLocked(account string) error {
	file := journalFile{
		SchemaVersion: SchemaVersion,
		Account:       account,
		Trades:        s.accounts[account],
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding journal for account %s: %w", account, err)
	}

	path := filepath.Join(s.dir, account+".json")
	if err := os.WriteFile(path, data, journalFilePerm); err != nil {
		return fmt.Errorf("writing journal file %s: %w", path, err)
	}
	return nil
}
