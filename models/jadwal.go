package models

import "time"

// Jadwal adalah jendela absensi yang dibuat admin: rentang hari ISO
// (1=Senin .. 7=Minggu, boleh melingkar lewat batas minggu), rentang
// jam dalam sehari, dan mode verifikasi yang diwajibkan.
type Jadwal struct {
	Id            int64     `gorm:"primaryKey" json:"id"`
	Nama          string    `gorm:"type:varchar(255)" json:"nama"`
	Keterangan    string    `gorm:"type:varchar(255)" json:"keterangan"`
	Aktif         bool      `json:"aktif"`
	HariMulai     int       `gorm:"type:int" json:"hari_mulai"`
	HariSelesai   int       `gorm:"type:int" json:"hari_selesai"`
	JamMulai      string    `gorm:"type:varchar(8)" json:"jam_mulai"`
	JamSelesai    string    `gorm:"type:varchar(8)" json:"jam_selesai"`
	PerluQr       bool      `json:"perlu_qr"`
	PerluKamera   bool      `json:"perlu_kamera"`
	PerluValidasi bool      `json:"perlu_validasi"`
	KodeQr        *string   `gorm:"type:varchar(255)" json:"kode_qr"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CreatedBy     int64     `gorm:"type:bigint" json:"created_by"`
	UpdatedBy     int64     `gorm:"type:bigint" json:"updated_by"`
}

func (Jadwal) TableName() string {
	return "konfigurasi_jadwal"
}
