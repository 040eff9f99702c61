package models

import "time"

// Article представляет отслеживаемую статью. Идентификатор назначается
// внешней площадкой и извлекается из присланной ссылки; в реестре он уникален.
type Article struct {
	ID          int       `json:"id"`           // Идентификатор статьи на площадке
	URL         string    `json:"url"`          // Каноническая ссылка
	Title       string    `json:"title"`        // Заголовок
	PublishedAt time.Time `json:"published_at"` // Дата публикации
	Counters    Counters  `json:"counters"`     // Текущие счётчики вовлечённости
	LastUpdated time.Time `json:"last_updated"` // Момент последнего обновления счётчиков
}

// Counters — счётчики вовлечённости статьи, приходят из внешнего API.
type Counters struct {
	Hits  int `json:"hits"`  // Количество открытий
	Views int `json:"views"` // Количество показов
}
