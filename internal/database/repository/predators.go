package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/jpapex/internal/predator"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PredatorRepo handles predators and their movies and scenes.
type PredatorRepo struct {
	db DBTX
}

func NewPredatorRepo(db DBTX) *PredatorRepo {
	return &PredatorRepo{db: db}
}

// Upsert writes p at position sortOrder, replacing its movies and scenes.
// Callers should run it inside a transaction.
func (r *PredatorRepo) Upsert(ctx context.Context, p predator.ApexPredator, sortOrder int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO predators(id, name, type, image, latitude, longitude, link, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 type=excluded.type,
	 image=excluded.image,
	 latitude=excluded.latitude,
	 longitude=excluded.longitude,
	 link=excluded.link,
	 sort_order=excluded.sort_order;
	`, p.ID, p.Name, string(p.Type), p.Image, p.Location.Latitude, p.Location.Longitude, p.Link, sortOrder)
	if err != nil {
		return fmt.Errorf("upsert predator %s: %w", p.Name, err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM predator_movies WHERE predator_id = ?`, p.ID); err != nil {
		return err
	}
	for i, title := range p.Movies {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO predator_movies(predator_id, position, title) VALUES (?, ?, ?)`, p.ID, i, title); err != nil {
			return fmt.Errorf("insert movie %q: %w", title, err)
		}
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM movie_scenes WHERE predator_id = ?`, p.ID); err != nil {
		return err
	}
	for i, s := range p.MovieScenes {
		if _, err := r.db.ExecContext(ctx, `
		INSERT INTO movie_scenes(predator_id, position, scene_id, movie, scene_description)
		VALUES (?, ?, ?, ?, ?)`, p.ID, i, s.ID, s.Movie, s.SceneDescription); err != nil {
			return fmt.Errorf("insert scene %d: %w", s.ID, err)
		}
	}
	return nil
}

// Count returns the number of stored predators.
func (r *PredatorRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM predators`).Scan(&n)
	return n, err
}

// List returns every predator in sort order with movies and scenes attached.
func (r *PredatorRepo) List(ctx context.Context) ([]predator.ApexPredator, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, type, image, latitude, longitude, link
	FROM predators ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []predator.ApexPredator
	index := map[string]int{}
	for rows.Next() {
		p, err := scanPredator(rows)
		if err != nil {
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	movies, err := r.movies(ctx, "")
	if err != nil {
		return nil, err
	}
	scenes, err := r.scenes(ctx, "")
	if err != nil {
		return nil, err
	}
	for id, i := range index {
		out[i].Movies = movies[id]
		out[i].MovieScenes = scenes[id]
	}
	return out, nil
}

// Get returns one predator by id.
func (r *PredatorRepo) Get(ctx context.Context, id string) (predator.ApexPredator, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, type, image, latitude, longitude, link
	FROM predators WHERE id = ?`, id)
	p, err := scanPredator(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return predator.ApexPredator{}, fmt.Errorf("predator %s: %w", id, ErrNotFound)
		}
		return predator.ApexPredator{}, err
	}
	movies, err := r.movies(ctx, id)
	if err != nil {
		return predator.ApexPredator{}, err
	}
	scenes, err := r.scenes(ctx, id)
	if err != nil {
		return predator.ApexPredator{}, err
	}
	p.Movies = movies[id]
	p.MovieScenes = scenes[id]
	return p, nil
}

// DeleteAll removes every predator; movies and scenes cascade.
func (r *PredatorRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM predators`)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPredator(s scanner) (predator.ApexPredator, error) {
	var (
		p   predator.ApexPredator
		typ string
	)
	if err := s.Scan(&p.ID, &p.Name, &typ, &p.Image, &p.Location.Latitude, &p.Location.Longitude, &p.Link); err != nil {
		return predator.ApexPredator{}, err
	}
	p.Type = predator.Type(typ)
	return p, nil
}

// movies returns titles keyed by predator id; an empty id loads all.
func (r *PredatorRepo) movies(ctx context.Context, id string) (map[string][]string, error) {
	query := `SELECT predator_id, title FROM predator_movies`
	var args []any
	if id != "" {
		query += ` WHERE predator_id = ?`
		args = append(args, id)
	}
	rows, err := r.db.QueryContext(ctx, query+` ORDER BY predator_id, position`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string][]string{}
	for rows.Next() {
		var pid, title string
		if err := rows.Scan(&pid, &title); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], title)
	}
	return out, rows.Err()
}

func (r *PredatorRepo) scenes(ctx context.Context, id string) (map[string][]predator.MovieScene, error) {
	query := `SELECT predator_id, scene_id, movie, scene_description FROM movie_scenes`
	var args []any
	if id != "" {
		query += ` WHERE predator_id = ?`
		args = append(args, id)
	}
	rows, err := r.db.QueryContext(ctx, query+` ORDER BY predator_id, position`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string][]predator.MovieScene{}
	for rows.Next() {
		var (
			pid string
			s   predator.MovieScene
		)
		if err := rows.Scan(&pid, &s.ID, &s.Movie, &s.SceneDescription); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], s)
	}
	return out, rows.Err()
}
