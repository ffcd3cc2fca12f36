package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umputun/feynman/pkg/domain"
)

// annotationSQL represents an annotation record for SQL operations
type annotationSQL struct {
	ID            string      `db:"id"`
	Question      string      `db:"question"`
	AnswerFinal   string      `db:"answer_final"`
	FeynmanMethod string      `db:"feynman_method"`
	StyleFeatures featuresSQL `db:"style_features"`
	Quality       string      `db:"quality"`
	Notes         string      `db:"notes"`
	Source        string      `db:"source"`
	Timestamp     time.Time   `db:"timestamp"`
	Annotator     string      `db:"annotator"`
	CreatedAt     time.Time   `db:"created_at"`
}

// featuresSQL is a JSON array of style feature names for SQL operations
type featuresSQL []domain.StyleFeature

// Value implements driver.Valuer for database storage
func (f featuresSQL) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for database retrieval
func (f *featuresSQL) Scan(value interface{}) error {
	if value == nil {
		*f = featuresSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), f)
	}

	return json.Unmarshal(data, f)
}

// toSQL converts a domain record to its SQL shape
func toSQL(rec *domain.AnnotationRecord) (*annotationSQL, error) {
	res := &annotationSQL{
		ID:            rec.ID,
		Question:      rec.Question,
		AnswerFinal:   rec.AnswerFinal,
		StyleFeatures: featuresSQL(rec.StyleFeatures),
		Quality:       string(rec.Quality),
		Notes:         rec.Notes,
		Source:        rec.Source,
		Timestamp:     rec.Timestamp,
		Annotator:     rec.Annotator,
	}
	if rec.FeynmanMethod != nil {
		data, err := json.Marshal(rec.FeynmanMethod)
		if err != nil {
			return nil, fmt.Errorf("marshal feynman method: %w", err)
		}
		res.FeynmanMethod = string(data)
	}
	return res, nil
}

// toDomain converts a SQL row back to the domain shape
func toDomain(row *annotationSQL) (*domain.AnnotationRecord, error) {
	rec := &domain.AnnotationRecord{
		ID:            row.ID,
		Question:      row.Question,
		AnswerFinal:   row.AnswerFinal,
		StyleFeatures: row.StyleFeatures,
		Quality:       domain.Quality(row.Quality),
		Notes:         row.Notes,
		Source:        row.Source,
		Timestamp:     row.Timestamp,
		Annotator:     row.Annotator,
	}
	if row.FeynmanMethod != "" {
		var fm domain.FeynmanMethod
		if err := json.Unmarshal([]byte(row.FeynmanMethod), &fm); err != nil {
			return nil, fmt.Errorf("unmarshal feynman method for %s: %w", row.ID, err)
		}
		rec.FeynmanMethod = &fm
	}
	return rec, nil
}
