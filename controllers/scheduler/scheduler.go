package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/echal/gembira-sub000/models"

	gomail "gopkg.in/gomail.v2"
)

// PengingatValidasiTertunda dijalankan berkala: mencari absensi yang
// masih pending lebih dari sehari lalu mengirim ringkasannya ke para
// admin. Gagal kirim surel hanya dicatat, tidak menghentikan job.
func PengingatValidasiTertunda() {
	log.Println("Memeriksa validasi absensi yang tertunda...")

	batasWaktu := time.Now().Add(-24 * time.Hour)

	var tertunda []models.Absensi
	err := models.DB.Where(
		"status_validasi = ? AND waktu_absen < ?",
		models.StatusPending,
		batasWaktu,
	).Find(&tertunda).Error
	if err != nil {
		log.Printf("Gagal mencari validasi tertunda: %v\n", err)
		return
	}

	if len(tertunda) == 0 {
		log.Println("Tidak ada validasi tertunda.")
		return
	}

	log.Printf("Ditemukan %d absensi menunggu validasi lebih dari sehari.", len(tertunda))

	var daftarAdmin []models.Admin
	if err := models.DB.Where("email <> ''").Find(&daftarAdmin).Error; err != nil {
		log.Printf("Gagal mengambil daftar admin: %v\n", err)
		return
	}

	for _, admin := range daftarAdmin {
		if err := kirimRingkasan(admin, len(tertunda)); err != nil {
			log.Printf("Gagal mengirim pengingat ke %s: %v", admin.Email, err)
		}
	}
}

func kirimRingkasan(admin models.Admin, jumlah int) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST tidak diatur, pengingat hanya dicatat di log")
		return nil
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", admin.Email)
	m.SetHeader("Subject", "Pengingat: Validasi Absensi Tertunda")
	m.SetBody("text/plain", fmt.Sprintf(
		"Halo %s,\n\nAda %d absensi yang menunggu validasi lebih dari sehari. Mohon segera ditindaklanjuti.\n",
		admin.Nama, jumlah))

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	return d.DialAndSend(m)
}
