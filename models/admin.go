package models

import "time"

// Admin super tidak terikat unit; admin biasa berwenang hanya atas
// pegawai di unitnya sendiri.
type Admin struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"type:varchar(255)" json:"nama"`
	Username  string    `gorm:"type:varchar(255)" json:"username"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	UnitId    *int64    `gorm:"type:bigint" json:"unit_id"`
	IsSuper   bool      `json:"is_super"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Admin) TableName() string {
	return "admin"
}
