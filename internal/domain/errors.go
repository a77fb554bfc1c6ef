package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound — запрошенная сущность отсутствует в бд.
	ErrNotFound = errors.New("not found")
	// ErrReferenceNotFound — концерт ссылается на несуществующего исполнителя или площадку.
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// UnknownGenresError возвращается, когда форма содержит жанры, которых нет в бд.
type UnknownGenresError struct {
	Names []string
}

func (e *UnknownGenresError) Error() string {
	return fmt.Sprintf("unknown genres: %s", strings.Join(e.Names, ", "))
}

// ErrUnknownGenre позволяет проверять UnknownGenresError через errors.Is.
var ErrUnknownGenre = errors.New("unknown genre")

func (e *UnknownGenresError) Is(target error) bool {
	return target == ErrUnknownGenre
}
