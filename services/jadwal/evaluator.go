package jadwalservice

import (
	"strconv"
	"strings"
	"time"

	"github.com/echal/gembira-sub000/models"
)

// Clock memasok waktu kini pada zona yang dikonfigurasi, supaya
// evaluasi jadwal bisa diuji dengan waktu tetap.
type Clock interface {
	Now() time.Time
}

type JamNyata struct {
	Lokasi *time.Location
}

func (j JamNyata) Now() time.Time {
	return time.Now().In(j.Lokasi)
}

// HariIso mengembalikan hari ISO: 1=Senin .. 7=Minggu.
func HariIso(t time.Time) int {
	hari := int(t.Weekday())
	if hari == 0 {
		return 7
	}
	return hari
}

// HariDalamRentang menguji keanggotaan hari pada rentang yang boleh
// melingkar lewat batas minggu: mulai>selesai berarti rentang
// menyeberang Minggu/Senin (misal Jumat sampai Senin).
func HariDalamRentang(hari, mulai, selesai int) bool {
	if mulai <= selesai {
		return hari >= mulai && hari <= selesai
	}
	return hari >= mulai || hari <= selesai
}

// detikDariJam menerima "15:04:05" atau "15:04" dan mengembalikan
// detik sejak tengah malam.
func detikDariJam(jam string) int {
	bagian := strings.Split(jam, ":")
	if len(bagian) < 2 {
		return 0
	}
	h, _ := strconv.Atoi(bagian[0])
	m, _ := strconv.Atoi(bagian[1])
	s := 0
	if len(bagian) > 2 {
		s, _ = strconv.Atoi(bagian[2])
	}
	return h*3600 + m*60 + s
}

// JadwalTerbuka memutuskan apakah jadwal sedang dibuka pada saat
// tertentu. Kedua ujung rentang jam inklusif; jam_mulai sama dengan
// jam_selesai berarti jadwal hanya terbuka tepat pada detik itu.
// Saat dievaluasi menurut jam dinding argumen, jadi pemanggil wajib
// mengonversinya ke zona waktu acuan lebih dulu.
func JadwalTerbuka(jadwal models.Jadwal, saat time.Time) bool {
	if !jadwal.Aktif {
		return false
	}

	if !HariDalamRentang(HariIso(saat), jadwal.HariMulai, jadwal.HariSelesai) {
		return false
	}

	detik := saat.Hour()*3600 + saat.Minute()*60 + saat.Second()
	return detik >= detikDariJam(jadwal.JamMulai) && detik <= detikDariJam(jadwal.JamSelesai)
}
