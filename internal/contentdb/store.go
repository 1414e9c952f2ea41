// Package contentdb keeps a snapshot of a content catalog in SQLite so a
// deployment can ship a database file instead of a YAML document.
package contentdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jianifeng/folio/internal/content"
)

// ErrEmpty is returned by Load when nothing has been imported yet.
var ErrEmpty = errors.New("contentdb: no catalog imported")

const schema = `
CREATE TABLE IF NOT EXISTS catalog (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	document TEXT NOT NULL,
	imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS items (
	collection TEXT NOT NULL,
	position INTEGER NOT NULL,
	id TEXT NOT NULL,
	number TEXT,
	title TEXT NOT NULL,
	subtitle TEXT,
	role TEXT,
	date TEXT,
	description TEXT,
	tags TEXT,
	highlights TEXT,
	award TEXT,
	links TEXT,
	image TEXT,
	background_image TEXT,
	qrcode TEXT,
	icon TEXT,
	PRIMARY KEY (collection, id)
);`

// Store reads and writes catalog snapshots.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open content database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create content schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import replaces the stored snapshot with c. The catalog is validated first.
func (s *Store) Import(ctx context.Context, c *content.Catalog) error {
	if err := content.Validate(c); err != nil {
		return err
	}

	skeleton := c.Clone()
	skeleton.About.Logs = nil
	skeleton.Work.Projects = nil
	skeleton.Products.Items = nil
	skeleton.Footer.Socials = nil

	doc, err := json.Marshal(skeleton)
	if err != nil {
		return fmt.Errorf("encode catalog document: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO catalog (id, document, imported_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET document = excluded.document, imported_at = excluded.imported_at
	`, string(doc)); err != nil {
		return fmt.Errorf("store catalog document: %w", err)
	}

	for collection, items := range c.Collections() {
		for pos, it := range items {
			if err := insertItem(ctx, tx, collection, pos, it); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func insertItem(ctx context.Context, tx *sql.Tx, collection string, pos int, it content.Item) error {
	tags, err := encodeList(it.Tags)
	if err != nil {
		return err
	}
	highlights, err := encodeList(it.Highlights)
	if err != nil {
		return err
	}
	links, err := encodeList(it.Links)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO items (collection, position, id, number, title, subtitle, role, date, description,
			tags, highlights, award, links, image, background_image, qrcode, icon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, collection, pos, it.ID, it.Number, it.Title, it.Subtitle, it.Role, it.Date, it.Description,
		tags, highlights, it.Award, links, it.Image, it.BackgroundImage, it.QRCode, it.Icon)
	if err != nil {
		return fmt.Errorf("store %s item %s: %w", collection, it.ID, err)
	}
	return nil
}

// Load rebuilds the stored catalog and validates it.
func (s *Store) Load(ctx context.Context) (*content.Catalog, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM catalog WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog document: %w", err)
	}

	var c content.Catalog
	if err := json.Unmarshal([]byte(doc), &c); err != nil {
		return nil, fmt.Errorf("decode catalog document: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT collection, id, COALESCE(number, ''), title, COALESCE(subtitle, ''), COALESCE(role, ''),
			COALESCE(date, ''), COALESCE(description, ''), COALESCE(tags, ''), COALESCE(highlights, ''),
			COALESCE(award, ''), COALESCE(links, ''), COALESCE(image, ''), COALESCE(background_image, ''),
			COALESCE(qrcode, ''), COALESCE(icon, '')
		FROM items
		ORDER BY collection, position
	`)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			collection                string
			it                        content.Item
			tags, highlights, linkDoc string
		)
		if err := rows.Scan(&collection, &it.ID, &it.Number, &it.Title, &it.Subtitle, &it.Role,
			&it.Date, &it.Description, &tags, &highlights, &it.Award, &linkDoc, &it.Image,
			&it.BackgroundImage, &it.QRCode, &it.Icon); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if err := decodeList(tags, &it.Tags); err != nil {
			return nil, fmt.Errorf("item %s tags: %w", it.ID, err)
		}
		if err := decodeList(highlights, &it.Highlights); err != nil {
			return nil, fmt.Errorf("item %s highlights: %w", it.ID, err)
		}
		if err := decodeList(linkDoc, &it.Links); err != nil {
			return nil, fmt.Errorf("item %s links: %w", it.ID, err)
		}

		switch collection {
		case content.CollectionLogs:
			c.About.Logs = append(c.About.Logs, it)
		case content.CollectionProjects:
			c.Work.Projects = append(c.Work.Projects, it)
		case content.CollectionProducts:
			c.Products.Items = append(c.Products.Items, it)
		case content.CollectionSocials:
			c.Footer.Socials = append(c.Footer.Socials, it)
		default:
			return nil, fmt.Errorf("item %s: unknown collection %q", it.ID, collection)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	if err := content.Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func encodeList[T any](items []T) (any, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	return string(out), nil
}

func decodeList[T any](raw string, out *[]T) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}
