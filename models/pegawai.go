package models

import "time"

type Pegawai struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	Nip       string    `gorm:"type:varchar(50)" json:"nip"`
	Nama      string    `gorm:"type:varchar(255)" json:"nama"`
	Username  string    `gorm:"type:varchar(255)" json:"username"`
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	UnitId    *int64    `gorm:"type:bigint" json:"unit_id"`
	IsDeleted int8      `gorm:"type:tinyint" json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Unit *Unit `gorm:"foreignKey:UnitId" json:"unit,omitempty"`
}

func (Pegawai) TableName() string {
	return "pegawai"
}
