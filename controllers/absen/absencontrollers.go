package absencontroller

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/echal/gembira-sub000/config"
	"github.com/echal/gembira-sub000/models"
	absenservice "github.com/echal/gembira-sub000/services/absen"
	jadwalservice "github.com/echal/gembira-sub000/services/jadwal"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// simpanFoto menyimpan foto verifikasi dengan nama ter-hash dan
// mengembalikan nama berkasnya. Tanpa berkas foto mengembalikan
// string kosong tanpa galat.
func simpanFoto(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("foto")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", fmt.Errorf("gagal membaca form file: %w", err)
	}

	extension := filepath.Ext(fileHeader.Filename)
	stringToHash := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileHeader.Filename)
	hasher := sha256.New()
	hasher.Write([]byte(stringToHash))
	hashedFilename := hex.EncodeToString(hasher.Sum(nil)) + extension

	uploadPath := os.Getenv("FOTO_PATH")
	if uploadPath == "" {
		uploadPath = "uploads/foto"
	}

	destinationPath := filepath.Join(uploadPath, hashedFilename)
	if err := c.SaveUploadedFile(fileHeader, destinationPath); err != nil {
		return "", fmt.Errorf("gagal menyimpan file")
	}
	return hashedFilename, nil
}

// ScanAbsensiHandler mencatat absensi pegawai terhadap satu jadwal.
// Jadwal ber-QR memakai token hasil pindaian; selain itu cukup
// kehadiran (plus foto bila jadwal mewajibkan kamera).
func ScanAbsensiHandler(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	pegawai := userData.(models.Pegawai)

	jadwalId, err := strconv.ParseInt(c.PostForm("jadwal_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jadwal_id wajib diisi"})
		return
	}

	var jadwal models.Jadwal
	if err := models.DB.First(&jadwal, jadwalId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Jadwal tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil jadwal"})
		return
	}

	namaFoto, err := simpanFoto(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var fotoRef *string
	if namaFoto != "" {
		fotoRef = &namaFoto
	}

	jam := jadwalservice.JamNyata{Lokasi: config.ZonaWaktu}
	perekam := &absenservice.Perekam{Absensi: &absenservice.GormAbsensiStore{DB: models.DB}}

	var absensi *models.Absensi
	if jadwal.PerluQr {
		absensi, err = perekam.PindaiQr(c.PostForm("token_qr"), pegawai, jadwal, jam.Now(), fotoRef)
	} else {
		verifikasi := models.VerifikasiTanpa
		if fotoRef != nil {
			verifikasi = models.VerifikasiKamera
		}
		absensi, err = perekam.Rekam(pegawai, jadwal, jam.Now(), verifikasi, nil, fotoRef)
	}

	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "Absensi berhasil dicatat", "absensi": absensi})
	case errors.Is(err, absenservice.ErrQrTidakValid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kode QR Tidak Sesuai!"})
	case errors.Is(err, absenservice.ErrJadwalTutup):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Jadwal Sedang Tidak Dibuka!"})
	case errors.Is(err, absenservice.ErrVerifikasiKurang):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Jadwal Ini Mewajibkan Foto Kamera!"})
	case errors.Is(err, absenservice.ErrAbsensiGanda):
		c.JSON(http.StatusConflict, gin.H{"error": "Anda Sudah Absen Untuk Jadwal Ini Hari Ini!"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan absensi"})
	}
}

func GetHistoryUser(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	pegawai := userData.(models.Pegawai)

	var absensi []models.Absensi
	if err := models.DB.Where("pegawai_id = ?", pegawai.Id).
		Order("waktu_absen desc").Limit(30).Find(&absensi).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Absen": absensi})
}

// GetJadwalTerbuka mengembalikan jadwal aktif yang jendelanya sedang
// dibuka sekarang, untuk ditawarkan aplikasi ke pegawai.
func GetJadwalTerbuka(c *gin.Context) {
	store := &jadwalservice.GormStore{DB: models.DB}
	daftar, err := store.DaftarAktif()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	jam := jadwalservice.JamNyata{Lokasi: config.ZonaWaktu}
	saat := jam.Now()
	terbuka := []models.Jadwal{}
	for _, jadwal := range daftar {
		if jadwalservice.JadwalTerbuka(jadwal, saat) {
			terbuka = append(terbuka, jadwal)
		}
	}

	c.JSON(http.StatusOK, gin.H{"Jadwal": terbuka})
}
