// Package cache persists a parsed, validated gazetteer snapshot to a
// DuckDB file, so repeated CLI invocations over the same NDJSON source
// skip re-parsing the source and re-applying the loader's record filters
// (each cached row is still rebuilt through model.NewLocation). This is the
// "persistence format for the dictionary snapshot" spec.md §1 names as an
// external collaborator — grounded on the teacher's
// internal/store/store.go idiom (database/sql, migrate-by-CREATE-TABLE,
// JSON-encode structured fields into TEXT columns).
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/intelligrit/geodis/internal/gazetteer"
	"github.com/intelligrit/geodis/internal/model"
)

// Cache wraps a DuckDB-backed snapshot store for one gazetteer file.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) a DuckDB database at path and ensures the
// snapshot schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	c := &Cache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating cache schema: %w", err)
	}
	return c, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

func (c *Cache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS locations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			unlocode TEXT,
			country_code TEXT,
			sub_type TEXT,
			translations TEXT,
			other_names TEXT,
			demonym TEXT,
			lat DOUBLE,
			lon DOUBLE,
			borders TEXT,
			is_capital BOOLEAN NOT NULL DEFAULT false,
			area_km2 INTEGER,
			population INTEGER,
			languages TEXT,
			admin_divisions TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Store writes every location in d to the cache, replacing any prior
// snapshot, and records sourcePath/sourceSize so Fresh can detect when the
// underlying NDJSON file has changed.
func (c *Cache) Store(d *gazetteer.Dictionary, sourcePath string, sourceSize int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM locations"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO locations
		(id, name, unlocode, country_code, sub_type, translations, other_names,
		 demonym, lat, lon, borders, is_capital, area_km2, population, languages, admin_divisions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, loc := range d.All() {
		translations, _ := json.Marshal(loc.Translations)
		otherNames, _ := json.Marshal(loc.OtherNames)
		borders, _ := json.Marshal(loc.Borders)
		languages, _ := json.Marshal(loc.Languages)
		adminDivs, _ := json.Marshal(loc.AdminDivisions)

		var lat, lon sql.NullFloat64
		if loc.Lat != nil {
			lat = sql.NullFloat64{Float64: *loc.Lat, Valid: true}
		}
		if loc.Lon != nil {
			lon = sql.NullFloat64{Float64: *loc.Lon, Valid: true}
		}
		var area, pop sql.NullInt64
		if loc.AreaKm2 != nil {
			area = sql.NullInt64{Int64: int64(*loc.AreaKm2), Valid: true}
		}
		if loc.Population != nil {
			pop = sql.NullInt64{Int64: int64(*loc.Population), Valid: true}
		}

		if _, err := stmt.Exec(loc.ID, loc.Name, loc.UNLOCODE, loc.CountryCode, loc.SubType,
			string(translations), string(otherNames), loc.Demonym, lat, lon, string(borders),
			loc.IsCapital, area, pop, string(languages), string(adminDivs)); err != nil {
			return fmt.Errorf("inserting location %s: %w", loc.ID, err)
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('source_path', ?)", sourcePath); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('source_size', ?)", fmt.Sprint(sourceSize)); err != nil {
		return err
	}

	return tx.Commit()
}

// Fresh reports whether the cache was built from the given source path
// and size — a cheap staleness check, not a content hash.
func (c *Cache) Fresh(sourcePath string, sourceSize int64) bool {
	var path, size string
	if err := c.db.QueryRow("SELECT value FROM meta WHERE key = 'source_path'").Scan(&path); err != nil {
		return false
	}
	if err := c.db.QueryRow("SELECT value FROM meta WHERE key = 'source_size'").Scan(&size); err != nil {
		return false
	}
	return path == sourcePath && size == fmt.Sprint(sourceSize)
}

// Load reconstructs a Dictionary from the cached snapshot.
func (c *Cache) Load() (*gazetteer.Dictionary, error) {
	d := gazetteer.New()

	rows, err := c.db.Query(`SELECT id, name, unlocode, country_code, sub_type, translations,
		other_names, demonym, lat, lon, borders, is_capital, area_km2, population, languages, admin_divisions
		FROM locations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, name, unlocode, countryCode, subType, demonym string
			translationsJSON, otherNamesJSON, bordersJSON     string
			languagesJSON, adminDivsJSON                      string
			lat, lon                                          sql.NullFloat64
			area, pop                                         sql.NullInt64
			isCapital                                         bool
		)
		if err := rows.Scan(&id, &name, &unlocode, &countryCode, &subType, &translationsJSON,
			&otherNamesJSON, &demonym, &lat, &lon, &bordersJSON, &isCapital, &area, &pop,
			&languagesJSON, &adminDivsJSON); err != nil {
			return nil, err
		}

		raw := model.Location{
			ID: id, Name: name, UNLOCODE: unlocode, CountryCode: countryCode,
			SubType: subType, Demonym: demonym, IsCapital: isCapital,
		}
		json.Unmarshal([]byte(translationsJSON), &raw.Translations)
		json.Unmarshal([]byte(otherNamesJSON), &raw.OtherNames)
		json.Unmarshal([]byte(bordersJSON), &raw.Borders)
		json.Unmarshal([]byte(languagesJSON), &raw.Languages)
		json.Unmarshal([]byte(adminDivsJSON), &raw.AdminDivisions)
		if lat.Valid {
			v := lat.Float64
			raw.Lat = &v
		}
		if lon.Valid {
			v := lon.Float64
			raw.Lon = &v
		}
		if area.Valid {
			v := int(area.Int64)
			raw.AreaKm2 = &v
		}
		if pop.Valid {
			v := int(pop.Int64)
			raw.Population = &v
		}

		loc, err := model.NewLocation(raw)
		if err != nil {
			return nil, fmt.Errorf("reconstructing cached location %s: %w", id, err)
		}
		d.Add(loc)
	}

	return d, rows.Err()
}

// Count returns the number of cached locations.
func (c *Cache) Count() int {
	var n int
	c.db.QueryRow("SELECT COUNT(*) FROM locations").Scan(&n)
	return n
}
