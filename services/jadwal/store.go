package jadwalservice

import (
	"fmt"

	"github.com/echal/gembira-sub000/models"
	"gorm.io/gorm"
)

type Store interface {
	Ambil(id int64) (models.Jadwal, error)
	DaftarAktif() ([]models.Jadwal, error)
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Ambil(id int64) (models.Jadwal, error) {
	var jadwal models.Jadwal
	if err := s.DB.First(&jadwal, id).Error; err != nil {
		return models.Jadwal{}, err
	}
	return jadwal, nil
}

func (s *GormStore) DaftarAktif() ([]models.Jadwal, error) {
	var daftar []models.Jadwal
	if err := s.DB.Where("aktif = ?", true).Find(&daftar).Error; err != nil {
		return nil, fmt.Errorf("ambil jadwal aktif: %w", err)
	}
	return daftar, nil
}
