package validasiservice

import (
	"errors"
	"fmt"

	"github.com/echal/gembira-sub000/models"
	"gorm.io/gorm"
)

type GormAbsensiStore struct {
	DB *gorm.DB
}

func (s *GormAbsensiStore) Ambil(id int64) (*models.Absensi, error) {
	var absensi models.Absensi
	err := s.DB.First(&absensi, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTidakDitemukan
	}
	if err != nil {
		return nil, fmt.Errorf("ambil absensi %d: %w", id, err)
	}
	return &absensi, nil
}

func (s *GormAbsensiStore) PutuskanJikaPending(id int64, keputusan Keputusan) (bool, error) {
	res := s.DB.Model(&models.Absensi{}).
		Where("id = ? AND status_validasi = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status_validasi":  keputusan.Status,
			"validator_id":     keputusan.ValidatorId,
			"waktu_validasi":   keputusan.Saat,
			"catatan_validasi": keputusan.Catatan,
		})
	if res.Error != nil {
		return false, fmt.Errorf("putuskan absensi %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormAbsensiStore) Cari(f Filter) ([]models.Absensi, error) {
	q := s.DB.Model(&models.Absensi{}).
		Select("absensi.*").
		Joins("JOIN pegawai ON pegawai.id = absensi.pegawai_id")

	if f.UnitId != nil {
		q = q.Where("pegawai.unit_id = ?", *f.UnitId)
	}
	if f.Status != "" {
		q = q.Where("absensi.status_validasi = ?", f.Status)
	}
	if f.JadwalId != 0 {
		q = q.Where("absensi.jadwal_id = ?", f.JadwalId)
	}
	if f.Tanggal != "" {
		q = q.Where("absensi.tgl_absen = ?", f.Tanggal)
	}
	if f.Teks != "" {
		q = q.Where("pegawai.nama LIKE ? OR pegawai.nip LIKE ?", "%"+f.Teks+"%", "%"+f.Teks+"%")
	}

	var daftar []models.Absensi
	if err := q.Order("absensi.waktu_absen desc").Find(&daftar).Error; err != nil {
		return nil, fmt.Errorf("cari absensi: %w", err)
	}
	return daftar, nil
}

type GormPegawaiStore struct {
	DB *gorm.DB
}

func (s *GormPegawaiStore) Ambil(id int64) (models.Pegawai, error) {
	var pegawai models.Pegawai
	err := s.DB.First(&pegawai, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Pegawai{}, ErrTidakDitemukan
	}
	if err != nil {
		return models.Pegawai{}, fmt.Errorf("ambil pegawai %d: %w", id, err)
	}
	return pegawai, nil
}
