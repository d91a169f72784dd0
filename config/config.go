package config

import (
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

var JWT_KEY []byte

// ZonaWaktu adalah zona waktu acuan untuk evaluasi jadwal dan
// pencatatan absensi.
var ZonaWaktu *time.Location

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("Berkas .env tidak ditemukan, memakai environment proses")
	}

	key := os.Getenv("JWT_KEY")
	if key == "" {
		log.Fatal("JWT_KEY must be set in .env file")
	}
	JWT_KEY = []byte(key)

	nama := os.Getenv("ZONA_WAKTU")
	if nama == "" {
		nama = "Asia/Jakarta"
	}
	loc, err := time.LoadLocation(nama)
	if err != nil {
		log.Printf("Zona waktu %q tidak dikenal, memakai WIB: %v", nama, err)
		loc = time.FixedZone("WIB", 7*3600)
	}
	ZonaWaktu = loc
}

type JWTClaims struct {
	Id    int64  `json:"id"`
	Nama  string `json:"nama"`
	Peran string `json:"peran"`
	jwt.RegisteredClaims
}
