package validasicontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/echal/gembira-sub000/config"
	"github.com/echal/gembira-sub000/models"
	jadwalservice "github.com/echal/gembira-sub000/services/jadwal"
	validasiservice "github.com/echal/gembira-sub000/services/validasi"

	"github.com/gin-gonic/gin"
)

func alur() *validasiservice.Alur {
	return &validasiservice.Alur{
		Absensi: &validasiservice.GormAbsensiStore{DB: models.DB},
		Pegawai: &validasiservice.GormPegawaiStore{DB: models.DB},
		Jam:     jadwalservice.JamNyata{Lokasi: config.ZonaWaktu},
	}
}

func kirimGalat(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validasiservice.ErrTidakDitemukan):
		c.JSON(http.StatusNotFound, gin.H{"error": "Data Absensi Tidak Ditemukan!"})
	case errors.Is(err, validasiservice.ErrAksesDitolak):
		c.JSON(http.StatusForbidden, gin.H{"error": "Absensi Di Luar Kewenangan Unit Anda!"})
	case errors.Is(err, validasiservice.ErrBukanPending):
		c.JSON(http.StatusConflict, gin.H{"error": "Absensi Ini Sudah Diputuskan!"})
	case errors.Is(err, validasiservice.ErrAlasanKosong):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Alasan Penolakan Wajib Diisi!"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses validasi"})
	}
}

func SetujuiHandler(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID absensi tidak valid"})
		return
	}

	if err := alur().Setujui(id, admin); err != nil {
		kirimGalat(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Absensi disetujui"})
}

func TolakHandler(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID absensi tidak valid"})
		return
	}

	var input struct {
		Alasan string `json:"alasan"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := alur().Tolak(id, admin, input.Alasan); err != nil {
		kirimGalat(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Absensi ditolak"})
}

// MassalHandler memproses banyak absensi sekaligus, tiap butir
// berdiri sendiri. Jawaban hanya berisi jumlah berhasil dan gagal.
func MassalHandler(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	var input struct {
		Ids    []int64 `json:"ids" binding:"required"`
		Aksi   string  `json:"aksi" binding:"required"`
		Alasan string  `json:"alasan"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hasil := alur().TerapkanMassal(input.Ids, input.Aksi, admin, input.Alasan)
	c.JSON(http.StatusOK, gin.H{"hasil": hasil})
}

func GetDaftarValidasi(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	f := validasiservice.Filter{
		Status:  c.Query("status"),
		Tanggal: c.Query("tanggal"),
		Teks:    c.Query("cari"),
	}
	if jadwalId := c.Query("jadwal_id"); jadwalId != "" {
		id, err := strconv.ParseInt(jadwalId, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "jadwal_id tidak valid"})
			return
		}
		f.JadwalId = id
	}

	daftar, err := alur().DaftarUntukAdmin(admin, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil daftar validasi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Absen": daftar})
}
