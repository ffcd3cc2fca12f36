package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feynman/pkg/domain"
)

// AnnotationRepository handles annotation-related database operations. The
// store is append-only apart from Remove, there is no update-in-place.
type AnnotationRepository struct {
	db *sqlx.DB
}

// NewAnnotationRepository creates a new annotation repository
func NewAnnotationRepository(db *sqlx.DB) *AnnotationRepository {
	return &AnnotationRepository{db: db}
}

// Close closes the database connection
func (r *AnnotationRepository) Close() error {
	return r.db.Close()
}

// Ping verifies the database connection
func (r *AnnotationRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Append validates and persists a new record. Validation failure returns
// domain.ErrMissingRequiredField and leaves the store untouched. On success
// the record's ID and Timestamp are assigned when not already set.
func (r *AnnotationRepository) Append(ctx context.Context, rec *domain.AnnotationRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	row, err := toSQL(rec)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO annotations (
			id, question, answer_final, feynman_method, style_features,
			quality, notes, source, timestamp, annotator
		) VALUES (
			:id, :question, :answer_final, :feynman_method, :style_features,
			:quality, :notes, :source, :timestamp, :annotator
		)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("append annotation: %w", err)}
		}
		return nil
	})
}

// List returns records in reverse-chronological order, most recently appended
// first, optionally filtered. Filtering is a pure read-side projection.
func (r *AnnotationRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.AnnotationRecord, error) {
	query := "SELECT * FROM annotations"
	var conds []string
	var args []interface{}

	if filter.Quality != "" {
		conds = append(conds, "quality = ?")
		args = append(args, string(filter.Quality))
	}
	if filter.Query != "" {
		conds = append(conds, "(LOWER(question) LIKE ? OR LOWER(answer_final) LIKE ?)")
		like := "%" + strings.ToLower(filter.Query) + "%"
		args = append(args, like, like)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY timestamp DESC, rowid DESC"

	var rows []annotationSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}

	res := make([]*domain.AnnotationRecord, 0, len(rows))
	for i := range rows {
		rec, err := toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}

// Get retrieves a single record by id
func (r *AnnotationRepository) Get(ctx context.Context, id string) (*domain.AnnotationRecord, error) {
	var row annotationSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM annotations WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get annotation: %w", err)
	}
	return toDomain(&row)
}

// Count returns the total number of stored records
func (r *AnnotationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM annotations"); err != nil {
		return 0, fmt.Errorf("count annotations: %w", err)
	}
	return count, nil
}

// Remove deletes at most one record by id. An unknown id is a no-op, not an
// error.
func (r *AnnotationRepository) Remove(ctx context.Context, id string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM annotations WHERE id = ?", id); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("remove annotation: %w", err)}
		}
		return nil
	})
}

// Export writes the filtered (or full) collection as pretty-printed JSON
func (r *AnnotationRepository) Export(ctx context.Context, w io.Writer, filter domain.ListFilter) error {
	recs, err := r.List(ctx, filter)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal annotations: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// importRecord accepts both historical record shapes: the legacy one carried
// a single free-text response, the newer one a structured feynman_method and
// quality_score. New code always writes the canonical shape.
type importRecord struct {
	ID            string                `json:"id"`
	Question      string                `json:"question"`
	Response      string                `json:"response"`      // legacy free-text answer
	AnswerFinal   string                `json:"answer_final"`
	FeynmanMethod *domain.FeynmanMethod `json:"feynman_method"`
	QualityScore  string                `json:"quality_score"` // historical alias of quality
	Quality       string                `json:"quality"`
	StyleFeatures []domain.StyleFeature `json:"styleFeatures"`
	Notes         string                `json:"notes"`
	Source        string                `json:"source"`
	Timestamp     string                `json:"timestamp"`
	Annotator     string                `json:"annotator"`
}

// ImportJSON reads a JSON array of records in either historical shape and
// appends them, migrating legacy records on the fly. Corrupted input is
// recovered as an empty collection, records failing validation are skipped
// with a warning. Returns the number of imported records.
func (r *AnnotationRepository) ImportJSON(ctx context.Context, reader io.Reader) (int, error) {
	var raw []importRecord
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		lgr.Printf("[WARN] corrupted annotation collection, treating as empty: %v", err)
		return 0, nil
	}

	imported := 0
	for i := range raw {
		rec := migrate(&raw[i])
		if err := r.Append(ctx, rec); err != nil {
			lgr.Printf("[WARN] skipping record %d on import: %v", i, err)
			continue
		}
		imported++
	}
	return imported, nil
}

// migrate converts an imported record of either shape to the canonical one
func migrate(in *importRecord) *domain.AnnotationRecord {
	rec := &domain.AnnotationRecord{
		ID:            in.ID,
		Question:      in.Question,
		AnswerFinal:   in.AnswerFinal,
		FeynmanMethod: in.FeynmanMethod,
		StyleFeatures: in.StyleFeatures,
		Quality:       domain.Quality(in.Quality),
		Notes:         in.Notes,
		Source:        in.Source,
		Annotator:     in.Annotator,
	}
	if rec.AnswerFinal == "" {
		rec.AnswerFinal = in.Response
	}
	if rec.Quality == "" {
		rec.Quality = domain.Quality(in.QualityScore)
	}
	if in.FeynmanMethod != nil && in.FeynmanMethod.IsZero() {
		rec.FeynmanMethod = nil
	}
	if ts, err := time.Parse(time.RFC3339, in.Timestamp); err == nil {
		rec.Timestamp = ts
	}
	return rec
}
