package absenservice

import (
	"errors"
	"strings"
	"time"

	"github.com/echal/gembira-sub000/models"
	jadwalservice "github.com/echal/gembira-sub000/services/jadwal"
)

var (
	ErrJadwalTutup      = errors.New("jadwal sedang tidak dibuka")
	ErrAbsensiGanda     = errors.New("sudah tercatat absen untuk jadwal ini hari ini")
	ErrVerifikasiKurang = errors.New("jadwal ini mewajibkan foto kamera")
	ErrQrTidakValid     = errors.New("kode qr tidak sesuai")
)

// AbsensiStore menulis dan membaca catatan absensi. Simpan wajib
// menerjemahkan pelanggaran indeks unik menjadi ErrAbsensiGanda.
type AbsensiStore interface {
	Simpan(a *models.Absensi) error
	CariSatu(pegawaiId, jadwalId int64, tgl string) (*models.Absensi, error)
}

type Perekam struct {
	Absensi AbsensiStore
}

// Rekam mencatat satu absensi terhadap jadwal yang sedang terbuka.
// Urutan prasyarat: jendela jadwal, kewajiban foto, lalu cek ganda.
// Cek ganda di sini hanya untuk pesan cepat ke pengguna; penjaga
// sesungguhnya adalah indeks unik di database, yang oleh store
// diterjemahkan ke ErrAbsensiGanda juga.
func (p *Perekam) Rekam(pegawai models.Pegawai, jadwal models.Jadwal, saat time.Time, verifikasi string, tokenQr, fotoRef *string) (*models.Absensi, error) {
	if !jadwalservice.JadwalTerbuka(jadwal, saat) {
		return nil, ErrJadwalTutup
	}

	if jadwal.PerluKamera && (fotoRef == nil || *fotoRef == "") {
		return nil, ErrVerifikasiKurang
	}

	tgl := saat.Format("2006-01-02")
	sudah, err := p.Absensi.CariSatu(pegawai.Id, jadwal.Id, tgl)
	if err != nil {
		return nil, err
	}
	if sudah != nil {
		return nil, ErrAbsensiGanda
	}

	status := models.StatusApproved
	if jadwal.PerluValidasi {
		status = models.StatusPending
	}

	absensi := &models.Absensi{
		PegawaiId:      pegawai.Id,
		JadwalId:       jadwal.Id,
		TglAbsen:       tgl,
		WaktuAbsen:     saat,
		Verifikasi:     verifikasi,
		TokenQr:        tokenQr,
		FotoRef:        fotoRef,
		StatusValidasi: status,
	}
	if err := p.Absensi.Simpan(absensi); err != nil {
		return nil, err
	}
	return absensi, nil
}

// PindaiQr mencocokkan token hasil pindaian dengan kode jadwal
// sebelum menyentuh apa pun yang lain: token salah tidak boleh
// membocorkan apakah jadwalnya sedang terbuka.
func (p *Perekam) PindaiQr(token string, pegawai models.Pegawai, jadwal models.Jadwal, saat time.Time, fotoRef *string) (*models.Absensi, error) {
	token = strings.TrimSpace(token)
	if jadwal.KodeQr == nil || token == "" || token != *jadwal.KodeQr {
		return nil, ErrQrTidakValid
	}

	verifikasi := models.VerifikasiQr
	if fotoRef != nil && *fotoRef != "" {
		verifikasi = models.VerifikasiKeduanya
	}
	return p.Rekam(pegawai, jadwal, saat, verifikasi, &token, fotoRef)
}
