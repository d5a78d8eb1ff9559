package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/whocolor/whocolor"
	"github.com/jackc/pgx/v5"
)

const (
	opGetAnnotation    = "get-annotation"
	opUpsertAnnotation = "upsert-annotation"
	opDeleteAnnotation = "delete-annotation"
)

// Annotation is an archived annotation of a single revision.
type Annotation struct {
	Lang      string          `json:"lang"`
	RevID     int64           `json:"rev_id"`
	PageID    int64           `json:"page_id"`
	Title     string          `json:"title"`
	Result    whocolor.Result `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

const getAnnotation = `-- name: GetAnnotation :one
SELECT lang, rev_id, page_id, title, result, created_at, updated_at
FROM annotations
WHERE lang = $1 AND rev_id = $2
`

// GetAnnotation returns the archived annotation of the revision.
// Returns KindNotFound wrapping ErrRecordNotFound if the revision was never archived.
func (store *SQLStore) GetAnnotation(ctx context.Context, lang string, revID int64) (Annotation, error) {
	row := store.db.QueryRow(ctx, getAnnotation, lang, revID)

	a, err := scanAnnotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Annotation{}, notFoundError(opGetAnnotation, lang, revID)
		}

		if errors.Is(err, ErrDataCorrupted) {
			return Annotation{}, newOpError(opGetAnnotation, KindCorrupted, lang, revID, err)
		}

		return Annotation{}, newOpError(opGetAnnotation, KindInternal, lang, revID, err)
	}

	return a, nil
}

type UpsertAnnotationParams struct {
	Lang   string
	Result *whocolor.Result
}

const upsertAnnotation = `-- name: UpsertAnnotation :one
INSERT INTO annotations (lang, rev_id, page_id, title, biggest_conflict_score, result)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (lang, rev_id) DO UPDATE SET
  page_id = EXCLUDED.page_id,
  title = EXCLUDED.title,
  biggest_conflict_score = EXCLUDED.biggest_conflict_score,
  result = EXCLUDED.result,
  updated_at = now()
RETURNING lang, rev_id, page_id, title, result, created_at, updated_at
`

// UpsertAnnotation archives the result, replacing an earlier annotation of the same revision.
func (store *SQLStore) UpsertAnnotation(ctx context.Context, arg UpsertAnnotationParams) (Annotation, error) {
	if arg.Result == nil || arg.Lang == "" || arg.Result.RevID <= 0 {
		return Annotation{}, newOpError(
			opUpsertAnnotation,
			KindInvalid,
			arg.Lang,
			0,
			errors.New("language and a result with revision id are required"),
		)
	}

	res := arg.Result

	data, err := json.Marshal(res)
	if err != nil {
		return Annotation{}, newOpError(opUpsertAnnotation, KindInvalid, arg.Lang, res.RevID, err)
	}

	row := store.db.QueryRow(ctx, upsertAnnotation,
		arg.Lang,
		res.RevID,
		res.PageID,
		res.Title,
		res.BiggestConflictScore,
		data,
	)

	a, err := scanAnnotation(row)
	if err != nil {
		return Annotation{}, newOpError(opUpsertAnnotation, KindInternal, arg.Lang, res.RevID, err)
	}

	return a, nil
}

const deleteAnnotation = `-- name: DeleteAnnotation :exec
DELETE FROM annotations
WHERE lang = $1 AND rev_id = $2
`

func (store *SQLStore) DeleteAnnotation(ctx context.Context, lang string, revID int64) error {
	tag, err := store.db.Exec(ctx, deleteAnnotation, lang, revID)
	if err != nil {
		return newOpError(opDeleteAnnotation, KindInternal, lang, revID, err)
	}

	if tag.RowsAffected() == 0 {
		return notFoundError(opDeleteAnnotation, lang, revID)
	}

	return nil
}

func scanAnnotation(row pgx.Row) (Annotation, error) {
	var (
		a    Annotation
		data []byte
	)

	err := row.Scan(
		&a.Lang,
		&a.RevID,
		&a.PageID,
		&a.Title,
		&data,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return Annotation{}, err
	}

	if err := json.Unmarshal(data, &a.Result); err != nil {
		return Annotation{}, fmt.Errorf("%w: %w", ErrDataCorrupted, err)
	}

	return a, nil
}
