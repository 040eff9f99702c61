// Package services содержит бизнес-логику реестра статей: добавление по
// ссылке, обновление счётчиков из внешнего API и массовое обновление,
// устойчивое к отказам отдельных запросов.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/vclink"
	"github.com/magabrotheeeer/vc-metrics/internal/models"
	"github.com/magabrotheeeer/vc-metrics/internal/storage/repository"
)

// Ошибки бизнес-уровня реестра статей.
var (
	// ErrNoArticleID — из присланной ссылки не извлекается идентификатор.
	ErrNoArticleID = errors.New("could not extract article id from link")
	// ErrArticleExists — статья уже отслеживается.
	ErrArticleExists = errors.New("article already tracked")
	// ErrArticleNotFound — статьи с таким ID нет в реестре.
	ErrArticleNotFound = errors.New("article not found")
)

// listCacheKey — ключ кэша отсортированного списка статей.
const listCacheKey = "articles:list"

// listCacheTTL — время жизни кэша списка; любая мутация сбрасывает его раньше.
const listCacheTTL = 5 * time.Minute

// ArticleRepository определяет методы реестра статей в хранилище.
type ArticleRepository interface {
	// CreateArticle добавляет статью, отклоняя дубликат по ID.
	CreateArticle(ctx context.Context, a models.Article) error
	// GetArticle возвращает статью по ID.
	GetArticle(ctx context.Context, id int) (*models.Article, error)
	// ListArticles возвращает статьи по дате публикации по убыванию.
	ListArticles(ctx context.Context) ([]*models.Article, error)
	// UpdateArticleCounters перезаписывает счётчики и момент обновления.
	UpdateArticleCounters(ctx context.Context, id int, c models.Counters, updatedAt time.Time) error
	// DeleteArticle удаляет статью по ID.
	DeleteArticle(ctx context.Context, id int) error
	// GetPlacementPrice возвращает текущую цену размещения.
	GetPlacementPrice(ctx context.Context) (float64, error)
	// SetPlacementPrice перезаписывает цену размещения.
	SetPlacementPrice(ctx context.Context, price float64) error
}

// Fetcher описывает клиент внешнего контент-API.
type Fetcher interface {
	// FetchContent читает статью по ID из внешнего API.
	FetchContent(ctx context.Context, id int) (*models.Article, error)
}

// Cache описывает методы кэширования списка статей.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// ListResult — список статей вместе с текущей ценой размещения.
// Цена читается из хранилища при каждом вызове и не кэшируется, поэтому
// смена цены видна уже следующим запросом.
type ListResult struct {
	Items          []*models.Article `json:"items"`
	PlacementPrice float64           `json:"placement_price"`
}

// ArticleService реализует реестр статей и конвейер обновления счётчиков.
type ArticleService struct {
	repo    ArticleRepository
	fetcher Fetcher
	cache   Cache
	log     *slog.Logger
}

// NewArticleService создает новый экземпляр ArticleService.
func NewArticleService(repo ArticleRepository, fetcher Fetcher, cache Cache, log *slog.Logger) *ArticleService {
	return &ArticleService{
		repo:    repo,
		fetcher: fetcher,
		cache:   cache,
		log:     log,
	}
}

// List возвращает отслеживаемые статьи и цену размещения.
func (s *ArticleService) List(ctx context.Context) (*ListResult, error) {
	price, err := s.repo.GetPlacementPrice(ctx)
	if err != nil {
		return nil, err
	}

	var items []*models.Article
	found, err := s.cache.Get(ctx, listCacheKey, &items)
	if err != nil {
		s.log.Warn("failed to read articles cache", sl.Err(err))
	}
	if !found {
		items, err = s.repo.ListArticles(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, listCacheKey, items, listCacheTTL); err != nil {
			s.log.Warn("failed to cache articles list", sl.Err(err))
		}
	}

	return &ListResult{
		Items:          items,
		PlacementPrice: price,
	}, nil
}

// Add извлекает ID из присланной ссылки, проверяет дубликат, запрашивает
// статью из внешнего API и сохраняет её в реестре.
func (s *ArticleService) Add(ctx context.Context, rawURL string) (*models.Article, error) {
	id, err := vclink.ExtractID(rawURL)
	if err != nil {
		return nil, ErrNoArticleID
	}

	if _, err := s.repo.GetArticle(ctx, id); err == nil {
		return nil, ErrArticleExists
	} else if !errors.Is(err, repository.ErrArticleNotFound) {
		return nil, err
	}

	item, err := s.fetcher.FetchContent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateArticle(ctx, *item); err != nil {
		if errors.Is(err, repository.ErrArticleExists) {
			return nil, ErrArticleExists
		}
		return nil, err
	}
	s.invalidateList(ctx)

	s.log.Info("article added", slog.Int("id", item.ID))
	return item, nil
}

// Remove удаляет статью из реестра.
func (s *ArticleService) Remove(ctx context.Context, id int) error {
	if err := s.repo.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	s.invalidateList(ctx)
	return nil
}

// RefreshOne заново запрашивает одну отслеживаемую статью и перезаписывает
// её счётчики. Ошибка внешнего API здесь отдаётся вызывающему.
func (s *ArticleService) RefreshOne(ctx context.Context, id int) (*models.Article, error) {
	current, err := s.repo.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	fresh, err := s.fetcher.FetchContent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateArticleCounters(ctx, id, fresh.Counters, fresh.LastUpdated); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)

	current.Counters = fresh.Counters
	current.LastUpdated = fresh.LastUpdated
	return current, nil
}

// RefreshAll обходит весь реестр и обновляет счётчики каждой статьи.
// Отказ одного запроса к внешнему API не прерывает обход: ошибка
// логируется, счётчики этой статьи остаются прежними. Возвращает общее
// количество отслеживаемых статей независимо от числа неудач.
func (s *ArticleService) RefreshAll(ctx context.Context) (int, error) {
	items, err := s.repo.ListArticles(ctx)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		fresh, err := s.fetcher.FetchContent(ctx, item.ID)
		if err != nil {
			s.log.Warn("failed to refresh article, skipping",
				slog.Int("id", item.ID), sl.Err(err))
			continue
		}
		if err := s.repo.UpdateArticleCounters(ctx, item.ID, fresh.Counters, fresh.LastUpdated); err != nil {
			s.log.Warn("failed to store refreshed counters, skipping",
				slog.Int("id", item.ID), sl.Err(err))
		}
	}
	s.invalidateList(ctx)

	s.log.Info("refreshed all articles", slog.Int("count", len(items)))
	return len(items), nil
}

// GetPrice возвращает текущую цену размещения.
func (s *ArticleService) GetPrice(ctx context.Context) (float64, error) {
	return s.repo.GetPlacementPrice(ctx)
}

// SetPrice перезаписывает цену размещения.
func (s *ArticleService) SetPrice(ctx context.Context, price float64) error {
	return s.repo.SetPlacementPrice(ctx, price)
}

func (s *ArticleService) invalidateList(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, listCacheKey); err != nil {
		s.log.Warn("failed to invalidate articles cache", sl.Err(err))
	}
}
