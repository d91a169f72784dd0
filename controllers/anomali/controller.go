package anomalicontroller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/echal/gembira-sub000/helper"
	"github.com/echal/gembira-sub000/models"

	"github.com/gin-gonic/gin"
)

// Batas minimal simpangan sebelum sebuah check-in dicap menyimpang,
// supaya pegawai berjadwal sangat teratur tidak terus-terusan
// terflag oleh deviasi kecil.
const minSelisihMenit = 30.0

type hasilAnomali struct {
	PegawaiId      int64    `json:"pegawai_id"`
	PegawaiNama    string   `json:"pegawai_nama"`
	Tanggal        string   `json:"tanggal"`
	JamMasuk       string   `json:"jam_masuk"`
	RataJamMasuk   string   `json:"rata_jam_masuk"`
	PrediksiMasuk  string   `json:"prediksi_masuk,omitempty"`
	SelisihMenit   float64  `json:"selisih_menit"`
	Menyimpang     bool     `json:"menyimpang"`
	Alasan         []string `json:"alasan"`
	JumlahRiwayat  int      `json:"jumlah_riwayat"`
}

// PeriksaAnomaliHandler membandingkan jam masuk pegawai pada satu
// tanggal dengan kebiasaannya: rata-rata plus-minus dua simpangan
// baku, ditambah tebakan regresi linear bila riwayatnya cukup.
// Hasilnya hanya bahan penyelidikan admin, tidak pernah membatalkan
// absensi yang sudah tercatat.
func PeriksaAnomaliHandler(c *gin.Context) {
	pegawaiId, err := strconv.ParseInt(c.Param("pegawai_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID pegawai tidak valid"})
		return
	}

	tanggal := c.Query("tanggal")
	if tanggal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tanggal wajib diisi (YYYY-MM-DD)"})
		return
	}

	var pegawai models.Pegawai
	if err := models.DB.First(&pegawai, pegawaiId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pegawai tidak ditemukan"})
		return
	}

	var absensiHari []models.Absensi
	if err := models.DB.Where("pegawai_id = ? AND tgl_absen = ?", pegawaiId, tanggal).
		Find(&absensiHari).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil absensi"})
		return
	}
	if len(absensiHari) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tidak ada absensi pada tanggal itu"})
		return
	}

	riwayat, err := helper.RiwayatJamMasuk(pegawaiId, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil riwayat"})
		return
	}

	var menitRiwayat []float64
	for _, baris := range riwayat {
		menitRiwayat = append(menitRiwayat, baris[1])
	}
	rata, deviasi := helper.RataDanDeviasi(menitRiwayat)

	var daftarHasil []hasilAnomali
	for _, absensi := range absensiHari {
		saat := absensi.WaktuAbsen
		menitMasuk := float64(saat.Hour()*60 + saat.Minute())

		hasil := hasilAnomali{
			PegawaiId:     pegawaiId,
			PegawaiNama:   pegawai.Nama,
			Tanggal:       tanggal,
			JamMasuk:      helper.MenitKeJam(menitMasuk),
			RataJamMasuk:  helper.MenitKeJam(rata),
			JumlahRiwayat: len(riwayat),
			Alasan:        []string{},
		}

		if len(riwayat) >= 5 {
			hasil.SelisihMenit = math.Abs(menitMasuk - rata)
			ambang := math.Max(2*deviasi, minSelisihMenit)
			if hasil.SelisihMenit > ambang {
				hasil.Menyimpang = true
				hasil.Alasan = append(hasil.Alasan, "Jam masuk jauh dari kebiasaan 30 hari terakhir")
			}

			hari := int(saat.Weekday())
			if hari == 0 {
				hari = 7
			}
			if prediksi, err := helper.PrediksiJamMasuk(riwayat, hari); err == nil {
				hasil.PrediksiMasuk = prediksi
			}
		} else {
			hasil.Alasan = append(hasil.Alasan, "Riwayat belum cukup untuk menilai kebiasaan")
		}

		daftarHasil = append(daftarHasil, hasil)
	}

	c.JSON(http.StatusOK, gin.H{"hasil": daftarHasil})
}
