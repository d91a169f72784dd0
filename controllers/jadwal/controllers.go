package jadwalcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/echal/gembira-sub000/helper"
	"github.com/echal/gembira-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type jadwalInput struct {
	Nama          string `json:"nama" binding:"required"`
	Keterangan    string `json:"keterangan"`
	Aktif         *bool  `json:"aktif"`
	HariMulai     int    `json:"hari_mulai" binding:"required,min=1,max=7"`
	HariSelesai   int    `json:"hari_selesai" binding:"required,min=1,max=7"`
	JamMulai      string `json:"jam_mulai" binding:"required"`
	JamSelesai    string `json:"jam_selesai" binding:"required"`
	PerluQr       bool   `json:"perlu_qr"`
	PerluKamera   bool   `json:"perlu_kamera"`
	PerluValidasi bool   `json:"perlu_validasi"`
}

// jamValid menerima "HH:MM" atau "HH:MM:SS".
func jamValid(jam string) bool {
	bagian := strings.Split(jam, ":")
	if len(bagian) != 2 && len(bagian) != 3 {
		return false
	}
	h, err := strconv.Atoi(bagian[0])
	if err != nil || h < 0 || h > 23 {
		return false
	}
	for _, b := range bagian[1:] {
		v, err := strconv.Atoi(b)
		if err != nil || v < 0 || v > 59 {
			return false
		}
	}
	return true
}

func periksaInput(input jadwalInput) string {
	if !jamValid(input.JamMulai) || !jamValid(input.JamSelesai) {
		return "Format jam tidak valid. Gunakan HH:MM atau HH:MM:SS"
	}
	// Rentang jam tidak boleh menyeberang tengah malam; hanya rentang
	// hari yang boleh melingkar.
	if helper.JamKeMenit(input.JamMulai) > helper.JamKeMenit(input.JamSelesai) {
		return "Jam mulai harus sebelum atau sama dengan jam selesai"
	}
	return ""
}

func GetJadwal(c *gin.Context) {
	var daftar []models.Jadwal
	if err := models.DB.Order("created_at desc").Find(&daftar).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Jadwal": daftar})
}

func CreateJadwal(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	var input jadwalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if pesan := periksaInput(input); pesan != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": pesan})
		return
	}

	aktif := true
	if input.Aktif != nil {
		aktif = *input.Aktif
	}

	jadwal := models.Jadwal{
		Nama:          input.Nama,
		Keterangan:    input.Keterangan,
		Aktif:         aktif,
		HariMulai:     input.HariMulai,
		HariSelesai:   input.HariSelesai,
		JamMulai:      input.JamMulai,
		JamSelesai:    input.JamSelesai,
		PerluQr:       input.PerluQr,
		PerluKamera:   input.PerluKamera,
		PerluValidasi: input.PerluValidasi,
		CreatedBy:     admin.Id,
		UpdatedBy:     admin.Id,
	}
	if input.PerluQr {
		kode := uuid.NewString()
		jadwal.KodeQr = &kode
	}

	if err := models.DB.Create(&jadwal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan jadwal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Jadwal berhasil dibuat", "jadwal": jadwal})
}

func UpdateJadwal(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID jadwal tidak valid"})
		return
	}

	var jadwal models.Jadwal
	if err := models.DB.First(&jadwal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Jadwal tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil jadwal"})
		return
	}

	var input jadwalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if pesan := periksaInput(input); pesan != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": pesan})
		return
	}

	jadwal.Nama = input.Nama
	jadwal.Keterangan = input.Keterangan
	if input.Aktif != nil {
		jadwal.Aktif = *input.Aktif
	}
	jadwal.HariMulai = input.HariMulai
	jadwal.HariSelesai = input.HariSelesai
	jadwal.JamMulai = input.JamMulai
	jadwal.JamSelesai = input.JamSelesai
	jadwal.PerluQr = input.PerluQr
	jadwal.PerluKamera = input.PerluKamera
	jadwal.PerluValidasi = input.PerluValidasi
	jadwal.UpdatedBy = admin.Id
	if input.PerluQr && jadwal.KodeQr == nil {
		kode := uuid.NewString()
		jadwal.KodeQr = &kode
	}

	if err := models.DB.Save(&jadwal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui jadwal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Jadwal berhasil diperbarui", "jadwal": jadwal})
}

// NonaktifkanJadwal mematikan jadwal tanpa menghapusnya; riwayat
// absensi yang menunjuk jadwal ini tetap utuh.
func NonaktifkanJadwal(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID jadwal tidak valid"})
		return
	}

	res := models.DB.Model(&models.Jadwal{}).Where("id = ?", id).
		Updates(map[string]interface{}{"aktif": false, "updated_by": admin.Id})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menonaktifkan jadwal"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jadwal tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Jadwal dinonaktifkan"})
}

// PutarKodeQr menerbitkan token QR baru; token lama langsung hangus.
func PutarKodeQr(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID jadwal tidak valid"})
		return
	}

	var jadwal models.Jadwal
	if err := models.DB.First(&jadwal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Jadwal tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil jadwal"})
		return
	}

	if !jadwal.PerluQr {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Jadwal ini tidak memakai QR"})
		return
	}

	kode := uuid.NewString()
	jadwal.KodeQr = &kode
	jadwal.UpdatedBy = admin.Id
	if err := models.DB.Save(&jadwal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui kode QR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kode QR diperbarui", "kode_qr": kode})
}
