package validasiservice

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/echal/gembira-sub000/models"
	jadwalservice "github.com/echal/gembira-sub000/services/jadwal"
)

var (
	ErrTidakDitemukan     = errors.New("data absensi tidak ditemukan")
	ErrBukanPending       = errors.New("absensi sudah diputuskan")
	ErrTransisiTidakValid = errors.New("transisi status tidak dikenal")
	ErrAlasanKosong       = errors.New("alasan penolakan wajib diisi")
	ErrAksesDitolak       = errors.New("absensi di luar kewenangan unit anda")
)

const (
	AksiSetujui = "setujui"
	AksiTolak   = "tolak"
)

// TransisiValid adalah tabel transisi status validasi. Satu-satunya
// status awal yang punya jalan keluar adalah pending; approved dan
// rejected terminal.
func TransisiValid(dari, ke string) bool {
	if dari != models.StatusPending {
		return false
	}
	return ke == models.StatusApproved || ke == models.StatusRejected
}

type Filter struct {
	Status   string
	JadwalId int64
	Tanggal  string
	Teks     string
	UnitId   *int64
}

// AbsensiStore milik alur validasi. PutuskanJikaPending mengubah
// status hanya bila barisnya masih pending dan melaporkan apakah ada
// baris yang berubah; dua admin yang memutuskan bersamaan dengan ini
// tidak bisa saling menimpa.
type AbsensiStore interface {
	Ambil(id int64) (*models.Absensi, error)
	PutuskanJikaPending(id int64, keputusan Keputusan) (bool, error)
	Cari(f Filter) ([]models.Absensi, error)
}

type PegawaiStore interface {
	Ambil(id int64) (models.Pegawai, error)
}

type Keputusan struct {
	Status      string
	ValidatorId int64
	Saat        time.Time
	Catatan     string
}

type Alur struct {
	Absensi AbsensiStore
	Pegawai PegawaiStore
	Jam     jadwalservice.Clock
}

// Setujui memindahkan satu absensi dari pending ke approved atas nama
// admin. Catatan diisi otomatis karena persetujuan tidak mewajibkan
// alasan tertulis.
func (a *Alur) Setujui(absensiId int64, admin models.Admin) error {
	catatan := fmt.Sprintf("Disetujui oleh %s", admin.Nama)
	return a.putuskan(absensiId, admin, models.StatusApproved, catatan)
}

// Tolak memindahkan satu absensi dari pending ke rejected; alasan
// wajib diisi oleh admin.
func (a *Alur) Tolak(absensiId int64, admin models.Admin, alasan string) error {
	if strings.TrimSpace(alasan) == "" {
		return ErrAlasanKosong
	}
	return a.putuskan(absensiId, admin, models.StatusRejected, alasan)
}

func (a *Alur) putuskan(absensiId int64, admin models.Admin, status, catatan string) error {
	absensi, err := a.Absensi.Ambil(absensiId)
	if err != nil {
		return err
	}

	if err := a.bolehMemutuskan(admin, absensi.PegawaiId); err != nil {
		return err
	}

	if !TransisiValid(absensi.StatusValidasi, status) {
		return ErrBukanPending
	}

	// Dicek ulang di penyimpanan: keputusan kedua yang menyalip
	// antara Ambil dan UPDATE gagal di sini, bukan menimpa.
	berubah, err := a.Absensi.PutuskanJikaPending(absensiId, Keputusan{
		Status:      status,
		ValidatorId: admin.Id,
		Saat:        a.Jam.Now(),
		Catatan:     catatan,
	})
	if err != nil {
		return err
	}
	if !berubah {
		return ErrBukanPending
	}
	return nil
}

func (a *Alur) bolehMemutuskan(admin models.Admin, pegawaiId int64) error {
	if admin.IsSuper {
		return nil
	}
	pegawai, err := a.Pegawai.Ambil(pegawaiId)
	if err != nil {
		return err
	}
	if admin.UnitId == nil || pegawai.UnitId == nil || *admin.UnitId != *pegawai.UnitId {
		return ErrAksesDitolak
	}
	return nil
}

type HasilMassal struct {
	Berhasil int `json:"berhasil"`
	Gagal    int `json:"gagal"`
}

// TerapkanMassal memproses tiap id secara independen; satu kegagalan
// tidak membatalkan sisanya. Hanya jumlah yang dikembalikan, galat
// per butir dicatat di log.
func (a *Alur) TerapkanMassal(ids []int64, aksi string, admin models.Admin, alasan string) HasilMassal {
	var hasil HasilMassal
	for _, id := range ids {
		var err error
		switch aksi {
		case AksiSetujui:
			err = a.Setujui(id, admin)
		case AksiTolak:
			err = a.Tolak(id, admin, alasan)
		default:
			err = ErrTransisiTidakValid
		}
		if err != nil {
			log.Printf("Validasi massal %s absensi %d oleh admin %d gagal: %v", aksi, id, admin.Id, err)
			hasil.Gagal++
			continue
		}
		hasil.Berhasil++
	}
	return hasil
}

// DaftarUntukAdmin mengembalikan absensi sesuai saringan, terurut
// waktu absen menurun. Admin biasa otomatis dipersempit ke unitnya
// sendiri, apa pun isi saringannya.
func (a *Alur) DaftarUntukAdmin(admin models.Admin, f Filter) ([]models.Absensi, error) {
	if !admin.IsSuper {
		if admin.UnitId == nil {
			return []models.Absensi{}, nil
		}
		f.UnitId = admin.UnitId
	}
	return a.Absensi.Cari(f)
}
