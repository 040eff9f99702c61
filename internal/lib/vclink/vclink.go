// Package vclink извлекает идентификатор статьи из присланной оператором
// ссылки. Площадка кодирует числовой ID в пути ссылки вида
// vc.ru/…/1234567-zagolovok; берется последняя последовательность из
// четырёх и более цифр.
package vclink

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

// ErrNoID возвращается, когда в пути ссылки нет пригодного идентификатора.
var ErrNoID = errors.New("no article id in link")

var idPattern = regexp.MustCompile(`\d{4,}`)

// ExtractID разбирает ссылку и возвращает идентификатор статьи.
// Непарсящаяся ссылка или путь без последовательности из ≥4 цифр — ErrNoID.
func ExtractID(rawURL string) (int, error) {
	const op = "vclink.ExtractID"
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return 0, fmt.Errorf("%s: %w", op, ErrNoID)
	}
	matches := idPattern.FindAllString(u.Path, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrNoID)
	}
	id, err := strconv.Atoi(matches[len(matches)-1])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, ErrNoID)
	}
	return id, nil
}
