package sqlite

import (
	"context"
	"fmt"
	"strings"

	"countdown/store"
)

func (d *DB) CreateParseHistory(ctx context.Context, create *store.ParseHistory) (*store.ParseHistory, error) {
	fields := []string{"uid", "input", "locale", "kind", "display", "end_ts"}
	placeholderValues := []any{
		create.UID, create.Input, create.Locale, string(create.Kind), create.Display, create.EndTs,
	}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		placeholderValues = append(placeholderValues, create.CreatedTs)
	}

	stmt := `INSERT INTO parse_history (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create parse history: %w", err)
	}

	return create, nil
}

func (d *DB) ListParseHistories(ctx context.Context, find *store.FindParseHistory) ([]*store.ParseHistory, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "parse_history.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "parse_history.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Kind; v != nil {
		where, args = append(where, "parse_history.kind = "+placeholder(len(args)+1)), append(args, string(*v))
	}
	if v := find.Locale; v != nil {
		where, args = append(where, "parse_history.locale = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, created_ts, input, locale, kind, display, end_ts
		FROM parse_history
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY parse_history.created_ts DESC, parse_history.id DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parse histories: %w", err)
	}
	defer rows.Close()

	list := make([]*store.ParseHistory, 0)
	for rows.Next() {
		var history store.ParseHistory
		var kind string
		if err := rows.Scan(
			&history.ID,
			&history.UID,
			&history.CreatedTs,
			&history.Input,
			&history.Locale,
			&kind,
			&history.Display,
			&history.EndTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan parse history: %w", err)
		}
		history.Kind = store.TokenKind(kind)
		list = append(list, &history)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parse histories: %w", err)
	}

	return list, nil
}

func (d *DB) DeleteParseHistory(ctx context.Context, delete *store.DeleteParseHistory) error {
	where, args := []string{}, []any{}

	if v := delete.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := delete.UID; v != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(where) == 0 {
		if !delete.All {
			return fmt.Errorf("refusing to delete parse history without a filter")
		}
		where = append(where, "1 = 1")
	}

	stmt := `DELETE FROM parse_history WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete parse history: %w", err)
	}
	return nil
}
