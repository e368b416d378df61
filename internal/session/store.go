package session

import (
	"errors"
	"slices"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// ExecutionEntry is one recorded execution in the live session's history.
// Entries are append-only: the host session appends them as code runs, and
// nothing ever rewrites a past entry.
type ExecutionEntry struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`

	Source string
}

// Ordinal returns the 1-indexed execution ordinal assigned when the entry
// was appended.
func (e ExecutionEntry) Ordinal() int {
	return int(e.ID)
}

// Store persists the live session's execution history in a local SQLite
// database. It is the durable backing for both HistorySource views: a dense
// snapshot of the full log, and direct keyed lookup by ordinal.
type Store struct {
	db *gorm.DB
}

// NewStore opens (creating if necessary) the execution history database at
// the given path.
func NewStore(dbFilePath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&ExecutionEntry{}); err != nil {
		return nil, err
	}

	return &Store{
		db: db,
	}, nil
}

// Append records an executed code snippet, assigning it the next execution
// ordinal.
func (store *Store) Append(source string) (*ExecutionEntry, error) {
	entry := ExecutionEntry{
		Source: source,
	}

	result := store.db.Create(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// Lookup implements HistorySource. Any failure to find the ordinal,
// including database errors, is reported as a miss.
func (store *Store) Lookup(ordinal int) (string, bool) {
	if ordinal < 1 {
		return "", false
	}

	var entry ExecutionEntry
	result := store.db.First(&entry, ordinal)
	if result.Error != nil {
		return "", false
	}

	return entry.Source, true
}

// CurrentOrdinal returns the ordinal the session would assign to the next
// execution, i.e. the ordinal of the cell invoking the companion. With an
// empty history it returns 1, which the resolver treats as "no prior entry".
func (store *Store) CurrentOrdinal() (int, error) {
	var entry ExecutionEntry
	result := store.db.Order("id desc").First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, result.Error
	}

	return entry.Ordinal() + 1, nil
}

// Snapshot returns a dense, ordinal-indexed view of the full execution log.
// It is the richer of the two history views and is consulted first by the
// resolver's fallback chain.
func (store *Store) Snapshot() (IndexedLog, error) {
	var entries []ExecutionEntry
	result := store.db.Order("id asc").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	log := make(IndexedLog, 0, len(entries))
	for _, entry := range entries {
		// Ordinals are dense unless entries were deleted out from under
		// us; pad any gap so slice position still matches ordinal.
		for len(log) < entry.Ordinal()-1 {
			log = append(log, "")
		}
		log = append(log, entry.Source)
	}

	return log, nil
}

// RecentEntries returns the most recent executions in chronological order.
func (store *Store) RecentEntries(limit int) ([]ExecutionEntry, error) {
	var entries []ExecutionEntry
	result := store.db.Order("id desc").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	slices.Reverse(entries)
	return entries, nil
}

// Reset deletes the entire execution history.
func (store *Store) Reset() error {
	result := store.db.Exec("DELETE FROM execution_entries")
	if result.Error != nil {
		return result.Error
	}

	return nil
}
