package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
	"github.com/launchhub/launchhub-backend/internal/models"
)

// Interaction kinds. Like and save are boolean toggles, share is an
// append-only counted event.
const (
	KindLike = "like"
	KindSave = "save"
)

// InteractionService manages per-(user, article) like/save/share state.
type InteractionService struct {
	db            *gorm.DB
	publicBaseURL string
}

func NewInteractionService(db *gorm.DB, publicBaseURL string) *InteractionService {
	return &InteractionService{db: db, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Status returns the caller's interaction state for one article plus
// the article's cached totals. No prior interaction is not an error.
func (s *InteractionService) Status(ctx context.Context, userID, articleID uint) (*models.InteractionStatus, error) {
	article, err := s.publishedArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	status := &models.InteractionStatus{
		TotalLikes:  article.TotalLikes,
		TotalShares: article.TotalShares,
	}

	var inter models.ArticleInteraction
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&inter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status, nil
		}
		return nil, err
	}

	status.Liked = inter.Liked
	status.Saved = inter.Saved
	return status, nil
}

// Toggle flips the caller's like/save state, or sets it when value is
// non-nil. The flag and the aggregate counter move in one transaction,
// and the flag update is guarded on the current value so a concurrent
// duplicate request can never double-count.
func (s *InteractionService) Toggle(ctx context.Context, userID, articleID uint, kind string, value *bool) (*models.InteractionStatus, error) {
	column, err := toggleColumn(kind)
	if err != nil {
		return nil, err
	}

	if _, err := s.publishedArticle(ctx, articleID); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inter, err := s.ensureRow(tx, userID, articleID)
		if err != nil {
			return err
		}

		current := inter.Liked
		if column == "saved" {
			current = inter.Saved
		}
		want := !current
		if value != nil {
			want = *value
		}

		res := tx.Model(&models.ArticleInteraction{}).
			Where("user_id = ? AND article_id = ? AND "+column+" = ?", userID, articleID, !want).
			UpdateColumn(column, want)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already in the requested state; idempotent no-op.
			return nil
		}

		if kind == KindLike {
			delta := 1
			if !want {
				delta = -1
			}
			return tx.Model(&models.Article{}).
				Where("id = ?", articleID).
				UpdateColumn("total_likes", gorm.Expr("total_likes + ?", delta)).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Status(ctx, userID, articleID)
}

// Share records a share event (never a toggle) and returns the
// canonical shareable URL for the article.
func (s *InteractionService) Share(ctx context.Context, userID, articleID uint) (*models.InteractionStatus, string, error) {
	article, err := s.publishedArticle(ctx, articleID)
	if err != nil {
		return nil, "", err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.ensureRow(tx, userID, articleID); err != nil {
			return err
		}
		if err := tx.Model(&models.ArticleInteraction{}).
			Where("user_id = ? AND article_id = ?", userID, articleID).
			UpdateColumn("shares", gorm.Expr("shares + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("total_shares", gorm.Expr("total_shares + ?", 1)).Error
	})
	if err != nil {
		return nil, "", err
	}

	status, err := s.Status(ctx, userID, articleID)
	if err != nil {
		return nil, "", err
	}
	return status, s.ShareURL(article), nil
}

// ShareURL builds the public link for an article.
func (s *InteractionService) ShareURL(article *models.Article) string {
	return fmt.Sprintf("%s/articles/%s", s.publicBaseURL, article.Slug)
}

func (s *InteractionService) publishedArticle(ctx context.Context, articleID uint) (*models.Article, error) {
	var article models.Article
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_published = ?", articleID, true).
		First(&article).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &article, nil
}

func (s *InteractionService) ensureRow(tx *gorm.DB, userID, articleID uint) (*models.ArticleInteraction, error) {
	inter := models.ArticleInteraction{UserID: userID, ArticleID: articleID}
	err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).
		FirstOrCreate(&inter).Error
	if err != nil {
		return nil, err
	}
	return &inter, nil
}

func toggleColumn(kind string) (string, error) {
	switch kind {
	case KindLike:
		return "liked", nil
	case KindSave:
		return "saved", nil
	default:
		return "", apperrors.NewValidation("kind", "must be like or save")
	}
}
