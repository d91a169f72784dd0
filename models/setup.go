package models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	if err := godotenv.Load(); err != nil {
		log.Println("Berkas .env tidak ditemukan, memakai environment proses")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("Link Database Tidak Ada!")
	}
	db, err := gorm.Open(mysql.Open(dbURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Gagal Terhubung ke Database: %v", err)
	}

	// Indeks unik absensi harian ikut terpasang di sini; penjaga
	// ganda yang sebenarnya ada di level database, bukan aplikasi.
	if err := db.AutoMigrate(&Unit{}, &Pegawai{}, &Admin{}, &Jadwal{}, &Absensi{}); err != nil {
		log.Fatalf("Gagal migrasi skema: %v", err)
	}

	log.Println("Koneksi Database Berhasil.")
	DB = db
}
