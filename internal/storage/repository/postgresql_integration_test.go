package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vc-metrics/internal/models"
)

func TestStorage_CreateUser(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantID  int
		wantErr error
		setup   func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name:   "первый пользователь получает id 1",
			email:  "first@example.com",
			wantID: 1,
			setup:  func(_ *testing.T, _ *TestDataFactory) {},
		},
		{
			name:   "id выдается как max+1",
			email:  "second@example.com",
			wantID: 8,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, 7, "first@example.com", "hash", false)
			},
		},
		{
			name:    "дубликат email отклоняется",
			email:   "taken@example.com",
			wantErr: ErrEmailTaken,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, 1, "taken@example.com", "hash", false)
			},
		},
		{
			name:    "дубликат email в другом регистре отклоняется",
			email:   "Taken@Example.COM",
			wantErr: ErrEmailTaken,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, 1, "taken@example.com", "hash", false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			gotID, err := storage.CreateUser(context.Background(), tt.email, "hashedpassword", false)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, gotID)

			verification := NewTestVerification(storage)
			verification.VerifyUserExists(t, gotID)
		})
	}
}

func TestStorage_GetUserByEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
		setup   func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name:  "поиск без учета регистра",
			email: "Admin@Example.COM",
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, 1, "admin@example.com", "hash", true)
			},
		},
		{
			name:    "неизвестный email",
			email:   "ghost@example.com",
			wantErr: ErrUserNotFound,
			setup:   func(_ *testing.T, _ *TestDataFactory) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			got, err := storage.GetUserByEmail(context.Background(), tt.email)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "admin@example.com", got.Email)
			assert.True(t, got.IsAdmin)
		})
	}
}

func TestStorage_UpdatePasswordHash(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr error
		setup   func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name: "успешная перезапись хэша",
			id:   1,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, 1, "user@example.com", "oldhash", false)
			},
		},
		{
			name:    "несуществующий пользователь",
			id:      99,
			wantErr: ErrUserNotFound,
			setup:   func(_ *testing.T, _ *TestDataFactory) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			err := storage.UpdatePasswordHash(context.Background(), tt.id, "newhash")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := storage.GetUserByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, "newhash", got.PasswordHash)
		})
	}
}

func TestStorage_DeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr error
		setup   func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name: "успешное удаление",
			id:   2,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, 1, "admin@example.com", "hash", true)
				factory.CreateUser(t, 2, "user@example.com", "hash", false)
			},
		},
		{
			name:    "несуществующий пользователь",
			id:      99,
			wantErr: ErrUserNotFound,
			setup:   func(_ *testing.T, _ *TestDataFactory) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			err := storage.DeleteUser(context.Background(), tt.id)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			verification := NewTestVerification(storage)
			verification.VerifyUserDeleted(t, tt.id)
		})
	}
}

func TestStorage_CreateArticle(t *testing.T) {
	publishedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	article := models.Article{
		ID:          123456,
		URL:         "https://vc.ru/marketing/123456",
		Title:       "Заголовок",
		PublishedAt: publishedAt,
		Counters:    models.Counters{Hits: 100, Views: 200},
		LastUpdated: publishedAt,
	}

	tests := []struct {
		name    string
		wantErr error
		setup   func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name:  "успешное добавление",
			setup: func(_ *testing.T, _ *TestDataFactory) {},
		},
		{
			name:    "дубликат отклоняется",
			wantErr: ErrArticleExists,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateArticle(t, 123456, "https://vc.ru/marketing/123456", "Заголовок", publishedAt, 1, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			err := storage.CreateArticle(context.Background(), article)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := storage.GetArticle(context.Background(), article.ID)
			require.NoError(t, err)
			assert.Equal(t, article.URL, got.URL)
			assert.Equal(t, article.Counters.Hits, got.Counters.Hits)
		})
	}
}

func TestStorage_ListArticles(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateArticle(t, 1001, "https://vc.ru/a/1001", "Старая",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0, 0)
	factory.CreateArticle(t, 1003, "https://vc.ru/a/1003", "Новая",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 0, 0)
	factory.CreateArticle(t, 1002, "https://vc.ru/a/1002", "Средняя",
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 0, 0)

	got, err := storage.ListArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Сортировка по дате публикации по убыванию
	assert.Equal(t, 1003, got[0].ID)
	assert.Equal(t, 1002, got[1].ID)
	assert.Equal(t, 1001, got[2].ID)
}

func TestStorage_UpdateArticleCounters(t *testing.T) {
	publishedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      int
		wantErr error
		setup   func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name: "успешное обновление счётчиков",
			id:   123456,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateArticle(t, 123456, "https://vc.ru/a/123456", "Заголовок", publishedAt, 1, 2)
			},
		},
		{
			name:    "несуществующая статья",
			id:      99,
			wantErr: ErrArticleNotFound,
			setup:   func(_ *testing.T, _ *TestDataFactory) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			err := storage.UpdateArticleCounters(context.Background(), tt.id,
				models.Counters{Hits: 500, Views: 900}, time.Now())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			verification := NewTestVerification(storage)
			verification.VerifyArticleCounters(t, tt.id, 500, 900)

			// Идентификационные поля не тронуты
			got, err := storage.GetArticle(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, "Заголовок", got.Title)
			assert.True(t, got.PublishedAt.Equal(publishedAt))
		})
	}
}

func TestStorage_DeleteArticle(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateArticle(t, 123456, "https://vc.ru/a/123456", "Заголовок",
		time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), 0, 0)

	err := storage.DeleteArticle(context.Background(), 123456)
	require.NoError(t, err)

	verification := NewTestVerification(storage)
	verification.VerifyArticleDeleted(t, 123456)

	err = storage.DeleteArticle(context.Background(), 123456)
	require.ErrorIs(t, err, ErrArticleNotFound)
}

func TestStorage_PlacementPrice(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	price, err := storage.GetPlacementPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, price)

	err = storage.SetPlacementPrice(context.Background(), 45000)
	require.NoError(t, err)

	price, err = storage.GetPlacementPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 45000.0, price)
}
