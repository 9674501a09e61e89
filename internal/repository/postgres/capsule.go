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

var capsuleColumns = []string{
	"id",
	"title",
	"content",
	"unlock_date",
	"unlock_condition",
	"is_public",
	"user_id",
	"status",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateCapsule(ctx context.Context, capsule *model.Capsule) error {
	query, args, err := sq.Insert("time_capsules").
		Columns("title", "content", "unlock_date", "unlock_condition", "is_public", "user_id", "status").
		Values(capsule.Title, capsule.Content, capsule.UnlockDate, capsule.UnlockCondition, capsule.IsPublic, capsule.UserID, model.CapsuleStatusLocked).
		Suffix(returning(capsuleColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if err := r.Chk(ctx).GetContext(ctx, capsule, query, args...); err != nil {
		return fmt.Errorf("failed to create capsule: %v", err)
	}

	return nil
}

// GetUserCapsules lists the user's capsules, optionally narrowed to one status.
func (r *Repository) GetUserCapsules(ctx context.Context, userID uuid.UUID, status string) (model.CapsuleList, error) {
	queryBuilder := sq.Select(capsuleColumns...).
		From("time_capsules").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if status != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"status": status})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	capsules := model.CapsuleList{}
	if err := r.Chk(ctx).SelectContext(ctx, &capsules, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get user capsules: %v", err)
	}

	return capsules, nil
}

func (r *Repository) GetPublicCapsules(ctx context.Context, limit uint64) (model.CapsuleList, error) {
	query, args, err := sq.Select(capsuleColumns...).
		From("time_capsules").
		Where(sq.Eq{
			"is_public": true,
			"status":    model.CapsuleStatusPublic,
		}).
		OrderBy("updated_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	capsules := model.CapsuleList{}
	if err := r.Chk(ctx).SelectContext(ctx, &capsules, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get public capsules: %v", err)
	}

	return capsules, nil
}

func (r *Repository) GetCapsule(ctx context.Context, id uuid.UUID) (*model.Capsule, error) {
	return r.getCapsule(ctx, sq.Eq{"id": id})
}

// GetUserCapsule is GetCapsule filtered by owner; other users' capsules are
// reported as model.ErrNotFound.
func (r *Repository) GetUserCapsule(ctx context.Context, id, userID uuid.UUID) (*model.Capsule, error) {
	return r.getCapsule(ctx, sq.Eq{"id": id, "user_id": userID})
}

func (r *Repository) getCapsule(ctx context.Context, where sq.Eq) (*model.Capsule, error) {
	query, args, err := sq.Select(capsuleColumns...).
		From("time_capsules").
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var capsule model.Capsule
	err = r.Chk(ctx).GetContext(ctx, &capsule, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get capsule: %v", err)
	}

	return &capsule, nil
}

func (r *Repository) UpdateCapsule(ctx context.Context, id, userID uuid.UUID, update model.CapsuleUpdate, now time.Time) (*model.Capsule, error) {
	queryBuilder := sq.Update("time_capsules").
		Set("updated_at", now).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning(capsuleColumns))

	if update.Title != nil {
		queryBuilder = queryBuilder.Set("title", *update.Title)
	}
	if update.Content != nil {
		queryBuilder = queryBuilder.Set("content", *update.Content)
	}
	if update.UnlockDate != nil {
		queryBuilder = queryBuilder.Set("unlock_date", *update.UnlockDate)
	}
	if update.UnlockCondition != nil {
		queryBuilder = queryBuilder.Set("unlock_condition", *update.UnlockCondition)
	}
	if update.IsPublic != nil {
		queryBuilder = queryBuilder.Set("is_public", *update.IsPublic)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var capsule model.Capsule
	err = r.Chk(ctx).GetContext(ctx, &capsule, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update capsule: %v", err)
	}

	return &capsule, nil
}

// UnlockCapsule moves a locked capsule to unlocked. It reports false when the
// capsule was no longer locked.
func (r *Repository) UnlockCapsule(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	return r.transition(ctx, id, model.CapsuleStatusLocked, map[string]interface{}{
		"status":     model.CapsuleStatusUnlocked,
		"updated_at": now,
	})
}

// PublishCapsule moves an unlocked capsule to public and makes it visible.
func (r *Repository) PublishCapsule(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	return r.transition(ctx, id, model.CapsuleStatusUnlocked, map[string]interface{}{
		"status":     model.CapsuleStatusPublic,
		"is_public":  true,
		"updated_at": now,
	})
}

func (r *Repository) transition(ctx context.Context, id uuid.UUID, from string, set map[string]interface{}) (bool, error) {
	query, args, err := sq.Update("time_capsules").
		SetMap(set).
		Where(sq.Eq{"id": id, "status": from}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update capsule status: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return affected > 0, nil
}

func (r *Repository) DeleteCapsule(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query, args, err := sq.Delete("time_capsules").
		Where(sq.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete capsule: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return affected > 0, nil
}
