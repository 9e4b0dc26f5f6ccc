package models

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

var (
	memDB  *sql.DB      // In-memory copy of the catalog for fast reads
	diskDB *sql.DB      // Persistent storage; nil when running memory-only
	dbMu   sync.RWMutex // Protect concurrent access during writes
)

// InitDB opens the catalog databases.
// An empty path runs the catalog purely in memory.
func InitDB(path string) error {
	var err error

	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err = os.MkdirAll(dir, 0755); err != nil {
				return serr.Wrap(err, "failed to create database directory")
			}
		}
		diskDB, err = sql.Open("duckdb", path)
		if err != nil {
			return serr.Wrap(err, "failed to open disk database")
		}
	}

	// DuckDB's go driver uses empty string for in-memory databases
	memDB, err = sql.Open("duckdb", "")
	if err != nil {
		return serr.Wrap(err, "failed to open memory database")
	}

	if err := migrateBoth(); err != nil {
		return serr.Wrap(err, "failed to migrate databases")
	}

	if err := syncDiskToMemory(); err != nil {
		return serr.Wrap(err, "failed to sync catalog to memory")
	}

	return nil
}

// CloseDB closes both database connections
func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if memDB != nil {
		memDB.Close()
		memDB = nil
	}
	if diskDB != nil {
		diskDB.Close()
		diskDB = nil
	}
}

// migrateBoth runs migrations on both databases
func migrateBoth() error {
	if diskDB != nil {
		if err := migrateDB(diskDB); err != nil {
			return serr.Wrap(err, "disk migration failed")
		}
	}

	if err := migrateDB(memDB); err != nil {
		return serr.Wrap(err, "memory migration failed")
	}
	return nil
}

// syncDiskToMemory copies every stored course into the memory database
func syncDiskToMemory() error {
	if diskDB == nil {
		return nil
	}

	rows, err := diskDB.Query(selectCourses + " ORDER BY id")
	if err != nil {
		return serr.Wrap(err, "failed to read courses from disk")
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return err
	}

	for _, c := range courses {
		if _, err := memDB.Exec(insertCourseWithID, c.insertArgsWithID()...); err != nil {
			logger.LogErr(err, "failed to copy course into memory", "slug", c.Slug)
		}
	}

	logger.Info("Loaded catalog into memory", "courses", len(courses))
	return nil
}

// WriteThrough writes to disk first for durability, then to the memory copy
func WriteThrough(query string, args ...any) error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if memDB == nil {
		return serr.New("catalog database not initialized - call InitDB first")
	}

	if diskDB != nil {
		if _, err := diskDB.Exec(query, args...); err != nil {
			return serr.Wrap(err, "failed to write to disk")
		}
	}

	if _, err := memDB.Exec(query, args...); err != nil {
		return serr.Wrap(err, "failed to update memory catalog")
	}
	return nil
}

// ReadFromCache performs fast reads from memory
func ReadFromCache(query string, args ...any) (*sql.Rows, error) {
	dbMu.RLock()
	defer dbMu.RUnlock()

	if memDB == nil {
		return nil, serr.New("catalog database not initialized - call InitDB first")
	}

	rows, err := memDB.Query(query, args...)
	if err != nil {
		if diskDB == nil {
			return nil, serr.Wrap(err, "memory read failed")
		}
		logger.LogErr(err, "cache read failed, falling back to disk")
		return diskDB.Query(query, args...)
	}
	return rows, nil
}

// QueryRowFromCache performs a single row query from memory
func QueryRowFromCache(query string, args ...any) (*sql.Row, error) {
	dbMu.RLock()
	defer dbMu.RUnlock()

	if memDB == nil {
		return nil, serr.New("catalog database not initialized - call InitDB first")
	}
	return memDB.QueryRow(query, args...), nil
}
