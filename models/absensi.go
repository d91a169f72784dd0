package models

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	VerifikasiTanpa    = "tanpa"
	VerifikasiQr       = "qr"
	VerifikasiKamera   = "kamera"
	VerifikasiKeduanya = "qr_kamera"
)

// Absensi adalah satu kejadian check-in: satu pegawai, satu jadwal,
// satu tanggal kalender. Indeks unik uniq_absen_harian menjamin
// paling banyak satu baris per kombinasi tersebut.
type Absensi struct {
	Id              int64      `gorm:"primaryKey" json:"id"`
	PegawaiId       int64      `gorm:"type:bigint;uniqueIndex:uniq_absen_harian" json:"pegawai_id"`
	JadwalId        int64      `gorm:"type:bigint;uniqueIndex:uniq_absen_harian" json:"jadwal_id"`
	TglAbsen        string     `gorm:"type:date;uniqueIndex:uniq_absen_harian" json:"tgl_absen"`
	WaktuAbsen      time.Time  `json:"waktu_absen"`
	Verifikasi      string     `gorm:"type:varchar(20)" json:"verifikasi"`
	TokenQr         *string    `gorm:"type:varchar(255)" json:"token_qr"`
	FotoRef         *string    `gorm:"type:varchar(255)" json:"foto_ref"`
	StatusValidasi  string     `gorm:"type:varchar(20)" json:"status_validasi"`
	ValidatorId     *int64     `gorm:"type:bigint" json:"validator_id"`
	WaktuValidasi   *time.Time `json:"waktu_validasi"`
	CatatanValidasi *string    `gorm:"type:varchar(255)" json:"catatan_validasi"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Absensi) TableName() string {
	return "absensi"
}
