package storage

import (
	"errors"

	"github.com/GoArmGo/fyyur/internal/domain"
	"gorm.io/gorm"
)

// notFound переводит gorm.ErrRecordNotFound в доменную ошибку
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
