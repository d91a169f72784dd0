package validasiservice

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/echal/gembira-sub000/models"
	absenservice "github.com/echal/gembira-sub000/services/absen"
)

type jamTetap struct{ t time.Time }

func (j jamTetap) Now() time.Time { return j.t }

// gudang memegang absensi dan pegawai di memori, dengan semantik
// PutuskanJikaPending yang sama dengan UPDATE bersyarat di database.
// Simpan/CariSatu ikut disediakan supaya gudang yang sama bisa
// dipakai perekam absen pada skenario ujung-ke-ujung.
type gudang struct {
	mu      sync.Mutex
	absensi map[int64]*models.Absensi
	pegawai map[int64]models.Pegawai
	urut    int64
}

func newGudang() *gudang {
	return &gudang{
		absensi: make(map[int64]*models.Absensi),
		pegawai: make(map[int64]models.Pegawai),
	}
}

func (g *gudang) Ambil(id int64) (*models.Absensi, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	a, ada := g.absensi[id]
	if !ada {
		return nil, ErrTidakDitemukan
	}
	salinan := *a
	return &salinan, nil
}

func (g *gudang) PutuskanJikaPending(id int64, keputusan Keputusan) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	a, ada := g.absensi[id]
	if !ada || a.StatusValidasi != models.StatusPending {
		return false, nil
	}
	a.StatusValidasi = keputusan.Status
	a.ValidatorId = &keputusan.ValidatorId
	a.WaktuValidasi = &keputusan.Saat
	a.CatatanValidasi = &keputusan.Catatan
	return true, nil
}

func (g *gudang) Cari(f Filter) ([]models.Absensi, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var hasil []models.Absensi
	for _, a := range g.absensi {
		if f.UnitId != nil {
			p, ada := g.pegawai[a.PegawaiId]
			if !ada || p.UnitId == nil || *p.UnitId != *f.UnitId {
				continue
			}
		}
		if f.Status != "" && a.StatusValidasi != f.Status {
			continue
		}
		if f.JadwalId != 0 && a.JadwalId != f.JadwalId {
			continue
		}
		hasil = append(hasil, *a)
	}
	return hasil, nil
}

func (g *gudang) AmbilPegawai(id int64) (models.Pegawai, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ada := g.pegawai[id]
	if !ada {
		return models.Pegawai{}, ErrTidakDitemukan
	}
	return p, nil
}

type pegawaiStore struct{ g *gudang }

func (s pegawaiStore) Ambil(id int64) (models.Pegawai, error) { return s.g.AmbilPegawai(id) }

func (g *gudang) Simpan(a *models.Absensi) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, b := range g.absensi {
		if b.PegawaiId == a.PegawaiId && b.JadwalId == a.JadwalId && b.TglAbsen == a.TglAbsen {
			return absenservice.ErrAbsensiGanda
		}
	}
	g.urut++
	a.Id = g.urut
	salinan := *a
	g.absensi[a.Id] = &salinan
	return nil
}

func (g *gudang) CariSatu(pegawaiId, jadwalId int64, tgl string) (*models.Absensi, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, a := range g.absensi {
		if a.PegawaiId == pegawaiId && a.JadwalId == jadwalId && a.TglAbsen == tgl {
			salinan := *a
			return &salinan, nil
		}
	}
	return nil, nil
}

func (g *gudang) tanamAbsensi(pegawaiId int64, status string) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.urut++
	g.absensi[g.urut] = &models.Absensi{
		Id:             g.urut,
		PegawaiId:      pegawaiId,
		JadwalId:       1,
		TglAbsen:       "2025-09-01",
		WaktuAbsen:     time.Date(2025, 9, 1, 7, 30, 0, 0, time.UTC),
		StatusValidasi: status,
	}
	return g.urut
}

func unitKe(id int64) *int64 { return &id }

func alurUji(g *gudang) *Alur {
	return &Alur{
		Absensi: g,
		Pegawai: pegawaiStore{g},
		Jam:     jamTetap{time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)},
	}
}

func TestTransisiValid(t *testing.T) {
	if !TransisiValid(models.StatusPending, models.StatusApproved) {
		t.Error("pending ke approved harus sah")
	}
	if !TransisiValid(models.StatusPending, models.StatusRejected) {
		t.Error("pending ke rejected harus sah")
	}
	for _, dari := range []string{models.StatusApproved, models.StatusRejected} {
		for _, ke := range []string{models.StatusPending, models.StatusApproved, models.StatusRejected} {
			if TransisiValid(dari, ke) {
				t.Errorf("transisi %s ke %s tidak boleh sah", dari, ke)
			}
		}
	}
}

func TestSetujuiTerminal(t *testing.T) {
	g := newGudang()
	g.pegawai[1] = models.Pegawai{Id: 1, UnitId: unitKe(10)}
	id := g.tanamAbsensi(1, models.StatusPending)
	admin := models.Admin{Id: 5, Nama: "Rina", UnitId: unitKe(10)}
	alur := alurUji(g)

	if err := alur.Setujui(id, admin); err != nil {
		t.Fatalf("persetujuan pertama gagal: %v", err)
	}
	rec, _ := g.Ambil(id)
	if rec.StatusValidasi != models.StatusApproved {
		t.Fatalf("status = %s, mau approved", rec.StatusValidasi)
	}
	if rec.ValidatorId == nil || *rec.ValidatorId != admin.Id {
		t.Errorf("validator tidak tercatat: %+v", rec.ValidatorId)
	}
	if rec.CatatanValidasi == nil || *rec.CatatanValidasi == "" {
		t.Error("catatan persetujuan harus terisi otomatis")
	}

	if err := alur.Setujui(id, admin); !errors.Is(err, ErrBukanPending) {
		t.Fatalf("persetujuan kedua: mau ErrBukanPending, dapat %v", err)
	}
	if err := alur.Tolak(id, admin, "terlambat"); !errors.Is(err, ErrBukanPending) {
		t.Fatalf("penolakan setelah terminal: mau ErrBukanPending, dapat %v", err)
	}
}

func TestTolakWajibAlasan(t *testing.T) {
	g := newGudang()
	g.pegawai[1] = models.Pegawai{Id: 1, UnitId: unitKe(10)}
	id := g.tanamAbsensi(1, models.StatusPending)
	admin := models.Admin{Id: 5, UnitId: unitKe(10)}
	alur := alurUji(g)

	if err := alur.Tolak(id, admin, "   "); !errors.Is(err, ErrAlasanKosong) {
		t.Fatalf("mau ErrAlasanKosong, dapat %v", err)
	}
	if err := alur.Tolak(id, admin, "foto tidak jelas"); err != nil {
		t.Fatalf("penolakan beralasan gagal: %v", err)
	}
	rec, _ := g.Ambil(id)
	if rec.StatusValidasi != models.StatusRejected {
		t.Fatalf("status = %s, mau rejected", rec.StatusValidasi)
	}
	if rec.CatatanValidasi == nil || *rec.CatatanValidasi != "foto tidak jelas" {
		t.Errorf("alasan tidak tercatat: %+v", rec.CatatanValidasi)
	}
}

func TestSetujuiTidakDitemukan(t *testing.T) {
	alur := alurUji(newGudang())
	if err := alur.Setujui(999, models.Admin{IsSuper: true}); !errors.Is(err, ErrTidakDitemukan) {
		t.Fatalf("mau ErrTidakDitemukan, dapat %v", err)
	}
}

func TestLingkupUnit(t *testing.T) {
	g := newGudang()
	g.pegawai[1] = models.Pegawai{Id: 1, UnitId: unitKe(10)}
	g.pegawai[2] = models.Pegawai{Id: 2}
	idUnit10 := g.tanamAbsensi(1, models.StatusPending)
	idTanpaUnit := g.tanamAbsensi(2, models.StatusPending)
	alur := alurUji(g)

	adminLain := models.Admin{Id: 6, UnitId: unitKe(20)}
	if err := alur.Setujui(idUnit10, adminLain); !errors.Is(err, ErrAksesDitolak) {
		t.Fatalf("admin unit lain: mau ErrAksesDitolak, dapat %v", err)
	}

	adminSama := models.Admin{Id: 7, UnitId: unitKe(10)}
	if err := alur.Setujui(idTanpaUnit, adminSama); !errors.Is(err, ErrAksesDitolak) {
		t.Fatalf("pegawai tanpa unit: mau ErrAksesDitolak, dapat %v", err)
	}

	super := models.Admin{Id: 8, IsSuper: true}
	if err := alur.Setujui(idUnit10, super); err != nil {
		t.Fatalf("super admin harus boleh: %v", err)
	}
}

func TestDaftarUntukAdminDipersempit(t *testing.T) {
	g := newGudang()
	g.pegawai[1] = models.Pegawai{Id: 1, UnitId: unitKe(10)}
	g.pegawai[2] = models.Pegawai{Id: 2, UnitId: unitKe(20)}
	g.tanamAbsensi(1, models.StatusPending)
	g.tanamAbsensi(2, models.StatusPending)
	alur := alurUji(g)

	biasa, err := alur.DaftarUntukAdmin(models.Admin{UnitId: unitKe(10)}, Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(biasa) != 1 || biasa[0].PegawaiId != 1 {
		t.Fatalf("admin biasa harus hanya melihat unitnya, dapat %d baris", len(biasa))
	}

	// Saringan unit dari luar tidak bisa menembus lingkup admin.
	bocor, err := alur.DaftarUntukAdmin(models.Admin{UnitId: unitKe(10)}, Filter{UnitId: unitKe(20)})
	if err != nil {
		t.Fatal(err)
	}
	if len(bocor) != 1 || bocor[0].PegawaiId != 1 {
		t.Fatal("saringan unit lain harus ditimpa lingkup admin")
	}

	semua, err := alur.DaftarUntukAdmin(models.Admin{IsSuper: true}, Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(semua) != 2 {
		t.Fatalf("super admin harus melihat semua, dapat %d baris", len(semua))
	}
}

func TestTerapkanMassal(t *testing.T) {
	g := newGudang()
	g.pegawai[1] = models.Pegawai{Id: 1, UnitId: unitKe(10)}
	idA := g.tanamAbsensi(1, models.StatusPending)
	idB := g.tanamAbsensi(1, models.StatusApproved)
	admin := models.Admin{Id: 5, UnitId: unitKe(10)}
	alur := alurUji(g)

	hasil := alur.TerapkanMassal([]int64{idA, idB, 999}, AksiSetujui, admin, "")
	if hasil.Berhasil != 1 || hasil.Gagal != 2 {
		t.Fatalf("mau 1 berhasil 2 gagal, dapat %+v", hasil)
	}

	ngawur := alur.TerapkanMassal([]int64{idA}, "arsipkan", admin, "")
	if ngawur.Berhasil != 0 || ngawur.Gagal != 1 {
		t.Fatalf("aksi tak dikenal harus gagal semua, dapat %+v", ngawur)
	}
}

// Dua admin memutuskan catatan yang sama bersamaan: tepat satu
// keputusan menang, satunya lagi ErrBukanPending.
func TestKeputusanBersamaan(t *testing.T) {
	g := newGudang()
	g.pegawai[1] = models.Pegawai{Id: 1, UnitId: unitKe(10)}
	id := g.tanamAbsensi(1, models.StatusPending)
	alur := alurUji(g)

	hasil := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		admin := models.Admin{Id: int64(100 + i), Nama: "Admin", UnitId: unitKe(10)}
		wg.Add(1)
		go func(adm models.Admin) {
			defer wg.Done()
			hasil <- alur.Setujui(id, adm)
		}(admin)
	}
	wg.Wait()
	close(hasil)

	menang, kalah := 0, 0
	for err := range hasil {
		switch {
		case err == nil:
			menang++
		case errors.Is(err, ErrBukanPending):
			kalah++
		default:
			t.Fatalf("galat tak terduga: %v", err)
		}
	}
	if menang != 1 || kalah != 1 {
		t.Fatalf("mau 1 menang 1 kalah, dapat %d menang %d kalah", menang, kalah)
	}
}

// Skenario ujung-ke-ujung: jadwal wajib QR dan validasi admin dengan
// jendela Senin 07:00-08:00. Pegawai memindai ABC123 Senin 07:30,
// absensi tercipta pending, admin seunit menyetujui, persetujuan
// kedua kandas.
func TestSkenarioPindaiSampaiSetuju(t *testing.T) {
	g := newGudang()
	g.pegawai[1] = models.Pegawai{Id: 1, Nama: "Budi", UnitId: unitKe(10)}

	kode := "ABC123"
	jadwal := models.Jadwal{
		Id:            3,
		Nama:          "Apel Pagi",
		Aktif:         true,
		HariMulai:     1,
		HariSelesai:   1,
		JamMulai:      "07:00:00",
		JamSelesai:    "08:00:00",
		PerluQr:       true,
		PerluValidasi: true,
		KodeQr:        &kode,
	}

	perekam := &absenservice.Perekam{Absensi: g}
	seninPagi := time.Date(2025, 9, 1, 7, 30, 0, 0, time.UTC)
	absensi, err := perekam.PindaiQr("ABC123", g.pegawai[1], jadwal, seninPagi, nil)
	if err != nil {
		t.Fatalf("pindai gagal: %v", err)
	}
	if absensi.StatusValidasi != models.StatusPending {
		t.Fatalf("status awal = %s, mau pending", absensi.StatusValidasi)
	}

	alur := alurUji(g)
	admin := models.Admin{Id: 9, Nama: "Rina", UnitId: unitKe(10)}
	if err := alur.Setujui(absensi.Id, admin); err != nil {
		t.Fatalf("persetujuan gagal: %v", err)
	}

	rec, _ := g.Ambil(absensi.Id)
	if rec.StatusValidasi != models.StatusApproved {
		t.Fatalf("status akhir = %s, mau approved", rec.StatusValidasi)
	}
	if err := alur.Setujui(absensi.Id, admin); !errors.Is(err, ErrBukanPending) {
		t.Fatalf("persetujuan ulang: mau ErrBukanPending, dapat %v", err)
	}
}
