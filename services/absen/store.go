package absenservice

import (
	"errors"
	"fmt"

	"github.com/echal/gembira-sub000/models"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type GormAbsensiStore struct {
	DB *gorm.DB
}

func (s *GormAbsensiStore) Simpan(a *models.Absensi) error {
	if err := s.DB.Create(a).Error; err != nil {
		if bentrokUnik(err) {
			return ErrAbsensiGanda
		}
		return fmt.Errorf("simpan absensi pegawai %d jadwal %d: %w", a.PegawaiId, a.JadwalId, err)
	}
	return nil
}

// bentrokUnik mengenali pelanggaran indeks unik baik lewat
// penerjemahan gorm maupun kode galat 1062 milik MySQL.
func bentrokUnik(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func (s *GormAbsensiStore) CariSatu(pegawaiId, jadwalId int64, tgl string) (*models.Absensi, error) {
	var absensi models.Absensi
	err := s.DB.Where("pegawai_id = ? AND jadwal_id = ? AND tgl_absen = ?",
		pegawaiId, jadwalId, tgl).First(&absensi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cari absensi pegawai %d jadwal %d tgl %s: %w", pegawaiId, jadwalId, tgl, err)
	}
	return &absensi, nil
}
