// Package store persists import runs and generated descriptions into a
// local SQLite database, for keeping history across CLI invocations.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"rentgen/pkg/generate"
	"rentgen/pkg/report"
)

// Store wraps the results database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS import_runs (
			"id" TEXT PRIMARY KEY,
			"created_at" TEXT,
			"rows_read" INTEGER,
			"produced" INTEGER,
			"rejected" INTEGER,
			"warnings" INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS descriptions (
			"id" TEXT PRIMARY KEY,
			"run_id" TEXT,
			"property_type" TEXT,
			"bhk" TEXT,
			"city" TEXT,
			"locality" TEXT,
			"area_sqft" INTEGER,
			"rent_amount" REAL,
			"deposit_amount" REAL,
			"furnishing_status" TEXT,
			"available_from" TEXT,
			"title" TEXT,
			"teaser_text" TEXT,
			"full_description" TEXT,
			"bullet_points" TEXT,
			"seo_keywords" TEXT,
			"meta_title" TEXT,
			"meta_description" TEXT,
			"source" TEXT,
			"latency_ms" INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_descriptions_run ON descriptions(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_descriptions_city ON descriptions(city)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records one import run's headline stats.
func (s *Store) SaveRun(rep *report.ImportReport) error {
	_, err := s.db.Exec(
		`INSERT INTO import_runs ("id","created_at","rows_read","produced","rejected","warnings") VALUES (?,?,?,?,?,?)`,
		rep.RunID,
		time.Now().UTC().Format(time.RFC3339),
		rep.Stats.RowsRead,
		rep.Stats.Produced,
		rep.Stats.Rejected,
		rep.Stats.Warnings,
	)
	return err
}

// SaveResults inserts every generated description for the run in one
// transaction.
func (s *Store) SaveResults(runID string, results []generate.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO descriptions (
		"id","run_id","property_type","bhk","city","locality","area_sqft",
		"rent_amount","deposit_amount","furnishing_status","available_from",
		"title","teaser_text","full_description","bullet_points","seo_keywords",
		"meta_title","meta_description","source","latency_ms"
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, res := range results {
		rec, desc := res.Record, res.Description
		if _, err := stmt.Exec(
			uuid.NewString(),
			runID,
			rec.PropertyType,
			rec.BHK,
			rec.City,
			rec.Locality,
			rec.AreaSqft,
			rec.RentAmount,
			rec.DepositAmount,
			rec.FurnishingStatus,
			rec.AvailableFrom,
			desc.Title,
			desc.TeaserText,
			desc.FullDescription,
			strings.Join(desc.BulletPoints, " | "),
			strings.Join(desc.SEOKeywords, ", "),
			desc.MetaTitle,
			desc.MetaDescription,
			res.Source,
			res.LatencyMS,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
