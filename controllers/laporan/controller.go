package laporancontrollers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/echal/gembira-sub000/config"
	"github.com/echal/gembira-sub000/models"
	jadwalservice "github.com/echal/gembira-sub000/services/jadwal"
	laporanservice "github.com/echal/gembira-sub000/services/laporan"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func agregator() *laporanservice.Agregator {
	return &laporanservice.Agregator{
		Jadwal:  &jadwalservice.GormStore{DB: models.DB},
		Absensi: &laporanservice.GormAbsensiStore{DB: models.DB},
		Pegawai: &laporanservice.GormPegawaiStore{DB: models.DB},
	}
}

func bulanDariQuery(c *gin.Context) (time.Time, bool) {
	bulan := c.DefaultQuery("bulan", time.Now().In(config.ZonaWaktu).Format("2006-01"))
	bulanTime, err := time.ParseInLocation("2006-01", bulan, config.ZonaWaktu)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format bulan tidak valid. Gunakan YYYY-MM"})
		return time.Time{}, false
	}
	return bulanTime, true
}

// GetLaporan merangkum kehadiran bulanan pegawai yang sedang login.
func GetLaporan(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	pegawai := userData.(models.Pegawai)

	bulanTime, ok := bulanDariQuery(c)
	if !ok {
		return
	}

	summary, err := agregator().HitungBulananPegawai(pegawai.Id, bulanTime)
	if err != nil {
		log.Printf("Gagal menghitung laporan pegawai %d: %v", pegawai.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data absensi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// LaporanAbsensiHarian merinci bulan menjadi baris per pasangan
// jadwal-hari yang diwajibkan, lengkap dengan status hadir/absennya.
func LaporanAbsensiHarian(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	pegawai := userData.(models.Pegawai)

	bulanTime, ok := bulanDariQuery(c)
	if !ok {
		return
	}

	daftarJadwal, err := (&jadwalservice.GormStore{DB: models.DB}).DaftarAktif()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data"})
		return
	}

	tahun, bulanNum, _ := bulanTime.Date()
	hariPertama := time.Date(tahun, bulanNum, 1, 0, 0, 0, 0, config.ZonaWaktu)
	hariTerakhir := hariPertama.AddDate(0, 1, 0).AddDate(0, 0, -1)

	var attendances []models.Absensi
	err = models.DB.Where("pegawai_id = ? AND tgl_absen BETWEEN ? AND ?",
		pegawai.Id, hariPertama.Format("2006-01-02"), hariTerakhir.Format("2006-01-02")).
		Find(&attendances).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data"})
		return
	}

	type kunci struct {
		tgl      string
		jadwalId int64
	}
	attendanceMap := make(map[kunci]models.Absensi)
	for _, a := range attendances {
		attendanceMap[kunci{a.TglAbsen, a.JadwalId}] = a
	}

	var rincian []models.LaporanHarian
	for d := hariPertama; !d.After(hariTerakhir); d = d.AddDate(0, 0, 1) {
		for _, jadwal := range daftarJadwal {
			if !jadwalservice.HariDalamRentang(jadwalservice.HariIso(d), jadwal.HariMulai, jadwal.HariSelesai) {
				continue
			}

			baris := models.LaporanHarian{
				Tanggal:    d.Format("2006-01-02"),
				NamaHari:   d.Format("Monday"),
				JadwalId:   jadwal.Id,
				NamaJadwal: jadwal.Nama,
			}
			if _, found := attendanceMap[kunci{baris.Tanggal, jadwal.Id}]; found {
				baris.Status = "hadir"
			} else {
				baris.Status = "absen/tidak hadir"
			}
			rincian = append(rincian, baris)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bulan":     bulanTime.Format("2006-01"),
		"kehadiran": rincian,
	})
}

// bolehLihatPegawai menyaring akses admin biasa ke pegawai seunit.
func bolehLihatPegawai(admin models.Admin, pegawai models.Pegawai) bool {
	if admin.IsSuper {
		return true
	}
	return admin.UnitId != nil && pegawai.UnitId != nil && *admin.UnitId == *pegawai.UnitId
}

func GetLaporanPegawai(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	pegawaiId, err := strconv.ParseInt(c.Param("pegawai_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID pegawai tidak valid"})
		return
	}

	var pegawai models.Pegawai
	if err := models.DB.First(&pegawai, pegawaiId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pegawai tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil pegawai"})
		return
	}

	if !bolehLihatPegawai(admin, pegawai) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Pegawai Di Luar Kewenangan Unit Anda!"})
		return
	}

	bulanTime, ok := bulanDariQuery(c)
	if !ok {
		return
	}

	summary, err := agregator().HitungBulananPegawai(pegawai.Id, bulanTime)
	if err != nil {
		log.Printf("Gagal menghitung laporan pegawai %d: %v", pegawai.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data absensi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pegawai": pegawai.Nama, "summary": summary})
}

func ambilUnitUntukAdmin(c *gin.Context, admin models.Admin) (models.Unit, bool) {
	unitId, err := strconv.ParseInt(c.Param("unit_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID unit tidak valid"})
		return models.Unit{}, false
	}

	if !admin.IsSuper && (admin.UnitId == nil || *admin.UnitId != unitId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unit Di Luar Kewenangan Anda!"})
		return models.Unit{}, false
	}

	var unit models.Unit
	if err := models.DB.First(&unit, unitId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit tidak ditemukan"})
			return models.Unit{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil unit"})
		return models.Unit{}, false
	}
	return unit, true
}

// GetLaporanUnit merekap satu unit untuk satu bulan. Bulan berjalan
// dicache sebentar di redis bila tersedia.
func GetLaporanUnit(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	unit, ok := ambilUnitUntukAdmin(c, admin)
	if !ok {
		return
	}
	bulanTime, ok := bulanDariQuery(c)
	if !ok {
		return
	}

	kunciCache := fmt.Sprintf("rekap:%d:%s", unit.Id, bulanTime.Format("2006-01"))
	if config.RDB != nil {
		if tersimpan, err := config.RDB.Get(config.Ctx, kunciCache).Result(); err == nil {
			var laporan models.LaporanUnit
			if json.Unmarshal([]byte(tersimpan), &laporan) == nil {
				c.JSON(http.StatusOK, gin.H{"laporan": laporan, "cache": true})
				return
			}
		}
	}

	laporan, err := agregator().HitungBulananUnit(unit, bulanTime)
	if err != nil {
		log.Printf("Gagal menghitung rekap unit %d: %v", unit.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghitung rekap unit"})
		return
	}

	if config.RDB != nil {
		if payload, err := json.Marshal(laporan); err == nil {
			config.RDB.Set(config.Ctx, kunciCache, payload, 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, gin.H{"laporan": laporan})
}

// UnduhRekapUnit mengirim rekap unit sebagai berkas XLSX.
func UnduhRekapUnit(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.Admin)

	unit, ok := ambilUnitUntukAdmin(c, admin)
	if !ok {
		return
	}
	bulanTime, ok := bulanDariQuery(c)
	if !ok {
		return
	}

	laporan, err := agregator().HitungBulananUnit(unit, bulanTime)
	if err != nil {
		log.Printf("Gagal menghitung rekap unit %d: %v", unit.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghitung rekap unit"})
		return
	}

	buku, err := laporanservice.BukuRekapUnit(laporan)
	if err != nil {
		log.Printf("Gagal menyusun berkas rekap unit %d: %v", unit.Id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyusun berkas rekap"})
		return
	}

	namaBerkas := fmt.Sprintf("rekap-%s-%s.xlsx", unit.Kode, bulanTime.Format("2006-01"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", namaBerkas))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := buku.Write(c.Writer); err != nil {
		log.Printf("Gagal mengirim berkas rekap unit %d: %v", unit.Id, err)
	}
}
