package models

import "time"

type Unit struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	Kode      string    `gorm:"type:varchar(50)" json:"kode"`
	Nama      string    `gorm:"type:varchar(255)" json:"nama"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Unit) TableName() string {
	return "unit_kerja"
}
