package laporanservice

import (
	"fmt"

	"github.com/echal/gembira-sub000/models"
	"gorm.io/gorm"
)

type GormAbsensiStore struct {
	DB *gorm.DB
}

func (s *GormAbsensiStore) DaftarPegawaiBulan(pegawaiId int64, tglAwal, tglAkhir string) ([]models.Absensi, error) {
	var daftar []models.Absensi
	err := s.DB.Where("pegawai_id = ? AND tgl_absen BETWEEN ? AND ?",
		pegawaiId, tglAwal, tglAkhir).
		Order("tgl_absen ASC").
		Find(&daftar).Error
	if err != nil {
		return nil, fmt.Errorf("ambil absensi pegawai %d bulan %s: %w", pegawaiId, tglAwal, err)
	}
	return daftar, nil
}

type GormPegawaiStore struct {
	DB *gorm.DB
}

func (s *GormPegawaiStore) Ambil(id int64) (models.Pegawai, error) {
	var pegawai models.Pegawai
	if err := s.DB.First(&pegawai, id).Error; err != nil {
		return models.Pegawai{}, err
	}
	return pegawai, nil
}

func (s *GormPegawaiStore) DaftarUnit(unitId int64) ([]models.Pegawai, error) {
	var daftar []models.Pegawai
	err := s.DB.Where("unit_id = ? AND is_deleted = 0", unitId).
		Order("nama ASC").
		Find(&daftar).Error
	if err != nil {
		return nil, fmt.Errorf("ambil pegawai unit %d: %w", unitId, err)
	}
	return daftar, nil
}
