package laporanservice

import (
	"fmt"
	"math"
	"time"

	"github.com/echal/gembira-sub000/models"
	jadwalservice "github.com/echal/gembira-sub000/services/jadwal"
)

const (
	StatusLuarBiasa      = "Luar Biasa"
	StatusBagus          = "Bagus"
	StatusPerluPerhatian = "Perlu Perhatian"
)

// Klasifikasi memetakan persentase kehadiran ke label pembinaan.
// Batas bawah tiap pita inklusif: 90.0 sudah Luar Biasa, 75.0 sudah
// Bagus.
func Klasifikasi(persen float64) string {
	switch {
	case persen >= 90:
		return StatusLuarBiasa
	case persen >= 75:
		return StatusBagus
	default:
		return StatusPerluPerhatian
	}
}

func bulatkan(x float64) float64 {
	return math.Round(x*10) / 10
}

// HitungBulanan menghitung rekap satu pegawai untuk satu bulan dari
// data yang sudah diambil. Target: untuk tiap tanggal dalam bulan,
// tiap jadwal aktif yang rentang harinya mencakup tanggal itu
// menyumbang satu kewajiban hadir; dua jadwal pada hari yang sama
// berarti dua kewajiban. Hadir dihitung per catatan absensi dalam
// bulan itu, tanpa mencocokkan kembali ke pasangan jadwal-harinya.
func HitungBulanan(daftarJadwal []models.Jadwal, absensi []models.Absensi, bulan time.Time) models.LaporanBulanan {
	tahun, namaBulan, _ := bulan.Date()
	hariPertama := time.Date(tahun, namaBulan, 1, 0, 0, 0, 0, bulan.Location())
	hariTerakhir := hariPertama.AddDate(0, 1, 0).AddDate(0, 0, -1)

	target := 0
	for d := hariPertama; !d.After(hariTerakhir); d = d.AddDate(0, 0, 1) {
		for _, jadwal := range daftarJadwal {
			if !jadwal.Aktif {
				continue
			}
			if jadwalservice.HariDalamRentang(jadwalservice.HariIso(d), jadwal.HariMulai, jadwal.HariSelesai) {
				target++
			}
		}
	}

	hadir := len(absensi)
	alpha := target - hadir
	if alpha < 0 {
		alpha = 0
	}

	persen := 0.0
	if target > 0 {
		persen = bulatkan(float64(hadir) / float64(target) * 100)
	}

	return models.LaporanBulanan{
		Bulan:           hariPertama.Format("January 2006"),
		TargetKehadiran: target,
		TotalHadir:      hadir,
		TotalAlpha:      alpha,
		Persentase:      persen,
		Status:          Klasifikasi(persen),
	}
}

type AbsensiStore interface {
	DaftarPegawaiBulan(pegawaiId int64, tglAwal, tglAkhir string) ([]models.Absensi, error)
}

type PegawaiStore interface {
	Ambil(id int64) (models.Pegawai, error)
	DaftarUnit(unitId int64) ([]models.Pegawai, error)
}

type Agregator struct {
	Jadwal  jadwalservice.Store
	Absensi AbsensiStore
	Pegawai PegawaiStore
}

func rentangBulan(bulan time.Time) (string, string) {
	tahun, namaBulan, _ := bulan.Date()
	awal := time.Date(tahun, namaBulan, 1, 0, 0, 0, 0, bulan.Location())
	akhir := awal.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return awal.Format("2006-01-02"), akhir.Format("2006-01-02")
}

func (g *Agregator) HitungBulananPegawai(pegawaiId int64, bulan time.Time) (models.LaporanBulanan, error) {
	daftarJadwal, err := g.Jadwal.DaftarAktif()
	if err != nil {
		return models.LaporanBulanan{}, err
	}

	tglAwal, tglAkhir := rentangBulan(bulan)
	absensi, err := g.Absensi.DaftarPegawaiBulan(pegawaiId, tglAwal, tglAkhir)
	if err != nil {
		return models.LaporanBulanan{}, err
	}

	return HitungBulanan(daftarJadwal, absensi, bulan), nil
}

// HitungBulananUnit memetakan rekap bulanan ke semua pegawai unit.
// Persentase unit ditimbang target per pegawai: total hadir dibagi
// total target seunit, bukan rata-rata persentase polos.
func (g *Agregator) HitungBulananUnit(unit models.Unit, bulan time.Time) (models.LaporanUnit, error) {
	daftarPegawai, err := g.Pegawai.DaftarUnit(unit.Id)
	if err != nil {
		return models.LaporanUnit{}, err
	}

	daftarJadwal, err := g.Jadwal.DaftarAktif()
	if err != nil {
		return models.LaporanUnit{}, err
	}

	tglAwal, tglAkhir := rentangBulan(bulan)
	laporan := models.LaporanUnit{
		UnitId:   unit.Id,
		NamaUnit: unit.Nama,
		Bulan:    bulan.Format("January 2006"),
		Rincian:  []models.LaporanPegawai{},
	}

	totalTarget, totalHadir := 0, 0
	for _, pegawai := range daftarPegawai {
		absensi, err := g.Absensi.DaftarPegawaiBulan(pegawai.Id, tglAwal, tglAkhir)
		if err != nil {
			return models.LaporanUnit{}, fmt.Errorf("rekap pegawai %d: %w", pegawai.Id, err)
		}
		rekap := HitungBulanan(daftarJadwal, absensi, bulan)
		totalTarget += rekap.TargetKehadiran
		totalHadir += rekap.TotalHadir
		laporan.Rincian = append(laporan.Rincian, models.LaporanPegawai{
			PegawaiId:      pegawai.Id,
			Nip:            pegawai.Nip,
			Nama:           pegawai.Nama,
			LaporanBulanan: rekap,
		})
	}

	if totalTarget > 0 {
		laporan.Persentase = bulatkan(float64(totalHadir) / float64(totalTarget) * 100)
	}
	return laporan, nil
}
