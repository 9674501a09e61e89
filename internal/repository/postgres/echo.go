package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/echo-service/internal/model"
)

var echoColumns = []string{"id", "content", "emotion_tag", "user_id", "is_matched", "created_at"}

var matchColumns = []string{"id", "echo_id", "matched_echo_id", "matched_at"}

func (r *Repository) CreateEcho(ctx context.Context, echo *model.Echo) error {
	query, args, err := sq.Insert("echo_wall").
		Columns("content", "emotion_tag", "user_id", "is_matched").
		Values(echo.Content, echo.EmotionTag, echo.UserID, false).
		Suffix(returning(echoColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if err := r.Chk(ctx).GetContext(ctx, echo, query, args...); err != nil {
		return fmt.Errorf("failed to create echo: %v", err)
	}

	return nil
}

func (r *Repository) GetEcho(ctx context.Context, id uuid.UUID) (*model.Echo, error) {
	query, args, err := sq.Select(echoColumns...).
		From("echo_wall").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var echo model.Echo
	err = r.Chk(ctx).GetContext(ctx, &echo, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get echo: %v", err)
	}

	return &echo, nil
}

func (r *Repository) GetEchoesByIDs(ctx context.Context, ids []uuid.UUID) (model.EchoList, error) {
	if len(ids) == 0 {
		return model.EchoList{}, nil
	}

	query, args, err := sq.Select(echoColumns...).
		From("echo_wall").
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	echoes := model.EchoList{}
	if err := r.Chk(ctx).SelectContext(ctx, &echoes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get echoes: %v", err)
	}

	return echoes, nil
}

func (r *Repository) GetUserEchoes(ctx context.Context, userID uuid.UUID) (model.EchoList, error) {
	query, args, err := sq.Select(echoColumns...).
		From("echo_wall").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	echoes := model.EchoList{}
	if err := r.Chk(ctx).SelectContext(ctx, &echoes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get user echoes: %v", err)
	}

	return echoes, nil
}

func (r *Repository) GetRecentEchoes(ctx context.Context, since time.Time, limit uint64) (model.EchoList, error) {
	query, args, err := sq.Select(echoColumns...).
		From("echo_wall").
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	echoes := model.EchoList{}
	if err := r.Chk(ctx).SelectContext(ctx, &echoes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get recent echoes: %v", err)
	}

	return echoes, nil
}

// FindMatchCandidates returns unmatched echoes tagged with tag that were
// written by someone other than authorID.
func (r *Repository) FindMatchCandidates(ctx context.Context, tag string, authorID, excludeID uuid.UUID, limit uint64) (model.EchoList, error) {
	query, args, err := sq.Select(echoColumns...).
		From("echo_wall").
		Where(sq.Eq{
			"emotion_tag": tag,
			"is_matched":  false,
		}).
		Where(sq.NotEq{
			"user_id": authorID,
			"id":      excludeID,
		}).
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	candidates := model.EchoList{}
	if err := r.Chk(ctx).SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find match candidates: %v", err)
	}

	return candidates, nil
}

// ClaimEcho flips is_matched on an unmatched echo. It returns
// model.ErrAlreadyMatched when the echo was matched in the meantime.
func (r *Repository) ClaimEcho(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Update("echo_wall").
		Set("is_matched", true).
		Where(sq.Eq{
			"id":         id,
			"is_matched": false,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to claim echo: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return model.ErrAlreadyMatched
	}

	return nil
}

func (r *Repository) SetEchoesMatched(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Update("echo_wall").
		Set("is_matched", true).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark echoes matched: %v", err)
	}

	return nil
}

func (r *Repository) CreateMatch(ctx context.Context, echoID, matchedEchoID uuid.UUID) (*model.EchoMatch, error) {
	query, args, err := sq.Insert("echo_matches").
		Columns("echo_id", "matched_echo_id").
		Values(echoID, matchedEchoID).
		Suffix(returning(matchColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var match model.EchoMatch
	if err := r.Chk(ctx).GetContext(ctx, &match, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create match: %v", err)
	}

	return &match, nil
}

// GetUserMatches returns every match touching one of the user's echoes,
// newest first.
func (r *Repository) GetUserMatches(ctx context.Context, userID uuid.UUID) (model.EchoMatchList, error) {
	ownEchoes := "SELECT id FROM echo_wall WHERE user_id = ?"

	query, args, err := sq.Select(matchColumns...).
		From("echo_matches").
		Where(sq.Or{
			sq.Expr("echo_id IN ("+ownEchoes+")", userID),
			sq.Expr("matched_echo_id IN ("+ownEchoes+")", userID),
		}).
		OrderBy("matched_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	matches := model.EchoMatchList{}
	if err := r.Chk(ctx).SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get user matches: %v", err)
	}

	return matches, nil
}
