package laporanservice

import (
	"reflect"
	"testing"
	"time"

	"github.com/echal/gembira-sub000/models"
)

func jadwalSeninJumat() models.Jadwal {
	return models.Jadwal{
		Id:          1,
		Nama:        "Kerja Harian",
		Aktif:       true,
		HariMulai:   1,
		HariSelesai: 5,
		JamMulai:    "07:00:00",
		JamSelesai:  "09:00:00",
	}
}

func absensiBulan(pegawaiId int64, jumlah int, bulan time.Time) []models.Absensi {
	var daftar []models.Absensi
	for i := 0; i < jumlah; i++ {
		daftar = append(daftar, models.Absensi{
			PegawaiId:      pegawaiId,
			JadwalId:       1,
			TglAbsen:       bulan.AddDate(0, 0, i).Format("2006-01-02"),
			StatusValidasi: models.StatusApproved,
		})
	}
	return daftar
}

// September 2025 punya 30 hari dengan tepat 22 hari kerja Senin-Jumat.
var september = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func TestHitungBulananSeninJumat(t *testing.T) {
	rekap := HitungBulanan([]models.Jadwal{jadwalSeninJumat()}, absensiBulan(1, 20, september), september)

	if rekap.TargetKehadiran != 22 {
		t.Fatalf("target = %d, mau 22", rekap.TargetKehadiran)
	}
	if rekap.TotalHadir != 20 {
		t.Fatalf("hadir = %d, mau 20", rekap.TotalHadir)
	}
	if rekap.TotalAlpha != 2 {
		t.Fatalf("alpha = %d, mau 2", rekap.TotalAlpha)
	}
	if rekap.Persentase != 90.9 {
		t.Fatalf("persentase = %v, mau 90.9", rekap.Persentase)
	}
	if rekap.Status != StatusLuarBiasa {
		t.Fatalf("status = %q, mau %q", rekap.Status, StatusLuarBiasa)
	}
}

func TestHitungBulananDuaJadwalSehari(t *testing.T) {
	pagi := jadwalSeninJumat()
	sore := jadwalSeninJumat()
	sore.Id = 2
	sore.Nama = "Apel Sore"

	rekap := HitungBulanan([]models.Jadwal{pagi, sore}, nil, september)
	if rekap.TargetKehadiran != 44 {
		t.Fatalf("dua jadwal di hari yang sama harus dihitung dua, target = %d", rekap.TargetKehadiran)
	}
}

func TestHitungBulananJadwalNonaktifDiabaikan(t *testing.T) {
	mati := jadwalSeninJumat()
	mati.Aktif = false

	rekap := HitungBulanan([]models.Jadwal{mati}, nil, september)
	if rekap.TargetKehadiran != 0 {
		t.Fatalf("jadwal nonaktif tidak boleh menyumbang target, dapat %d", rekap.TargetKehadiran)
	}
	if rekap.Persentase != 0 {
		t.Fatalf("tanpa target persentase harus 0, dapat %v", rekap.Persentase)
	}
}

func TestHitungBulananDeterministik(t *testing.T) {
	jadwal := []models.Jadwal{jadwalSeninJumat()}
	absensi := absensiBulan(1, 15, september)

	pertama := HitungBulanan(jadwal, absensi, september)
	for i := 0; i < 5; i++ {
		ulang := HitungBulanan(jadwal, absensi, september)
		if !reflect.DeepEqual(pertama, ulang) {
			t.Fatalf("hasil berubah antar pemanggilan: %+v vs %+v", pertama, ulang)
		}
	}
}

func TestHitungBulananLebihDariTarget(t *testing.T) {
	rekap := HitungBulanan([]models.Jadwal{jadwalSeninJumat()}, absensiBulan(1, 30, september), september)
	if rekap.TotalAlpha != 0 {
		t.Fatalf("alpha tidak boleh negatif, dapat %d", rekap.TotalAlpha)
	}
}

func TestKlasifikasiBatasPita(t *testing.T) {
	kasus := []struct {
		persen float64
		mau    string
	}{
		{74.9, StatusPerluPerhatian},
		{75.0, StatusBagus},
		{89.9, StatusBagus},
		{90.0, StatusLuarBiasa},
		{100.0, StatusLuarBiasa},
		{0, StatusPerluPerhatian},
	}
	for _, k := range kasus {
		if dapat := Klasifikasi(k.persen); dapat != k.mau {
			t.Errorf("Klasifikasi(%v) = %q, mau %q", k.persen, dapat, k.mau)
		}
	}
}

type jadwalTetap struct{ daftar []models.Jadwal }

func (j jadwalTetap) Ambil(id int64) (models.Jadwal, error) {
	for _, jd := range j.daftar {
		if jd.Id == id {
			return jd, nil
		}
	}
	return models.Jadwal{}, nil
}

func (j jadwalTetap) DaftarAktif() ([]models.Jadwal, error) { return j.daftar, nil }

type absensiTetap struct{ perPegawai map[int64][]models.Absensi }

func (a absensiTetap) DaftarPegawaiBulan(pegawaiId int64, awal, akhir string) ([]models.Absensi, error) {
	return a.perPegawai[pegawaiId], nil
}

type pegawaiTetap struct{ daftar []models.Pegawai }

func (p pegawaiTetap) Ambil(id int64) (models.Pegawai, error) {
	for _, pg := range p.daftar {
		if pg.Id == id {
			return pg, nil
		}
	}
	return models.Pegawai{}, nil
}

func (p pegawaiTetap) DaftarUnit(unitId int64) ([]models.Pegawai, error) { return p.daftar, nil }

func TestHitungBulananUnitTertimbang(t *testing.T) {
	agregator := &Agregator{
		Jadwal: jadwalTetap{[]models.Jadwal{jadwalSeninJumat()}},
		Absensi: absensiTetap{map[int64][]models.Absensi{
			1: absensiBulan(1, 22, september),
			2: absensiBulan(2, 11, september),
		}},
		Pegawai: pegawaiTetap{[]models.Pegawai{
			{Id: 1, Nama: "Budi"},
			{Id: 2, Nama: "Sari"},
		}},
	}

	laporan, err := agregator.HitungBulananUnit(models.Unit{Id: 10, Nama: "Sekretariat"}, september)
	if err != nil {
		t.Fatal(err)
	}
	if len(laporan.Rincian) != 2 {
		t.Fatalf("rincian = %d baris, mau 2", len(laporan.Rincian))
	}

	// Total 33 hadir dari 44 target.
	if laporan.Persentase != 75.0 {
		t.Fatalf("persentase unit = %v, mau 75.0", laporan.Persentase)
	}
}

func TestHitungBulananUnitAgregat(t *testing.T) {
	agregator := &Agregator{
		Jadwal: jadwalTetap{[]models.Jadwal{jadwalSeninJumat()}},
		Absensi: absensiTetap{map[int64][]models.Absensi{
			1: absensiBulan(1, 22, september), // 100%
			2: absensiBulan(2, 0, september),  // 0%
			3: absensiBulan(3, 0, september),  // 0%
		}},
		Pegawai: pegawaiTetap{[]models.Pegawai{{Id: 1}, {Id: 2}, {Id: 3}}},
	}

	laporan, err := agregator.HitungBulananUnit(models.Unit{Id: 10}, september)
	if err != nil {
		t.Fatal(err)
	}
	// 22 hadir dari 66 target, dibulatkan satu desimal dari agregat.
	if laporan.Persentase != 33.3 {
		t.Fatalf("persentase unit = %v, mau 33.3", laporan.Persentase)
	}
}

func TestBukuRekapUnit(t *testing.T) {
	laporan := models.LaporanUnit{
		UnitId:     10,
		NamaUnit:   "Sekretariat",
		Bulan:      "September 2025",
		Persentase: 90.9,
		Rincian: []models.LaporanPegawai{
			{
				PegawaiId: 1,
				Nip:       "19900101",
				Nama:      "Budi",
				LaporanBulanan: models.LaporanBulanan{
					TargetKehadiran: 22,
					TotalHadir:      20,
					TotalAlpha:      2,
					Persentase:      90.9,
					Status:          StatusLuarBiasa,
				},
			},
		},
	}

	f, err := BukuRekapUnit(laporan)
	if err != nil {
		t.Fatal(err)
	}

	nama, err := f.GetCellValue("Rekap", "B4")
	if err != nil {
		t.Fatal(err)
	}
	if nama != "Budi" {
		t.Fatalf("sel B4 = %q, mau Budi", nama)
	}
	status, _ := f.GetCellValue("Rekap", "G4")
	if status != StatusLuarBiasa {
		t.Fatalf("sel G4 = %q, mau %q", status, StatusLuarBiasa)
	}
}
