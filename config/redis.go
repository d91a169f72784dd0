package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis menyiapkan cache rekap laporan. REDIS_ADDR boleh kosong;
// tanpa redis aplikasi tetap berjalan, hanya tanpa cache.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Println("REDIS_ADDR tidak diatur, cache rekap dimatikan")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		log.Printf("Gagal terhubung ke Redis: %v", err)
		RDB = nil
		return
	}

	log.Println("Koneksi Redis Berhasil.")
}
