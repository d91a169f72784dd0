package helper

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/echal/gembira-sub000/models"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/linear_models"
)

func JamKeMenit(jam string) float64 {
	bagian := strings.Split(jam, ":")
	if len(bagian) < 2 {
		return 0
	}
	h, _ := strconv.Atoi(bagian[0])
	m, _ := strconv.Atoi(bagian[1])
	return float64(h*60 + m)
}

func MenitKeJam(menit float64) string {
	h := int(menit / 60)
	m := int(menit) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// RataDanDeviasi menghitung rata-rata dan simpangan baku menit
// jam masuk, untuk menilai seberapa jauh check-in hari ini dari
// kebiasaan pegawai.
func RataDanDeviasi(menit []float64) (float64, float64) {
	if len(menit) == 0 {
		return 0, 0
	}

	var jumlah, jumlahKuadrat float64
	for _, m := range menit {
		jumlah += m
		jumlahKuadrat += m * m
	}

	n := float64(len(menit))
	rata := jumlah / n
	varian := (jumlahKuadrat / n) - (rata * rata)
	if varian < 0 {
		varian = 0
	}
	return rata, math.Sqrt(varian)
}

// PrediksiJamMasuk melatih regresi linear sederhana di atas riwayat
// (hari ISO, menit jam masuk) dan menebak jam masuk yang wajar untuk
// hari tertentu.
func PrediksiJamMasuk(riwayat [][2]float64, hariIso int) (string, error) {
	if len(riwayat) == 0 {
		return "", fmt.Errorf("no training data available")
	}

	var csvBuffer bytes.Buffer
	csvBuffer.WriteString("menit_masuk,hari\n")
	for _, baris := range riwayat {
		csvBuffer.WriteString(fmt.Sprintf("%.2f,%.2f\n", baris[1], baris[0]))
	}

	instances, err := base.ParseCSVToInstances(csvBuffer.String(), true)
	if err != nil {
		return "", fmt.Errorf("failed to parse training data: %w", err)
	}

	model := linear_models.NewLinearRegression()
	if err := model.Fit(instances); err != nil {
		return "", fmt.Errorf("failed to train model: %w", err)
	}

	predCSV := fmt.Sprintf("menit_masuk,hari\n0.0,%.2f\n", float64(hariIso))
	predInstances, err := base.ParseCSVToInstances(predCSV, true)
	if err != nil {
		return "", fmt.Errorf("failed to parse prediction data: %w", err)
	}

	predictions, err := model.Predict(predInstances)
	if err != nil {
		return "", fmt.Errorf("prediction failed: %w", err)
	}

	classAttrs := predictions.AllClassAttributes()
	if len(classAttrs) == 0 {
		return "", fmt.Errorf("no class attribute in predictions")
	}

	classSpec := base.ResolveAttributes(predictions, classAttrs)[0]
	predictedBytes := predictions.Get(classSpec, 0)
	predictedMinutes := base.UnpackBytesToFloat(predictedBytes)
	return MenitKeJam(predictedMinutes), nil
}

// RiwayatJamMasuk mengambil absensi terakhir seorang pegawai sebagai
// data latih: pasangan (hari ISO, menit jam masuk).
func RiwayatJamMasuk(pegawaiId int64, batas int) ([][2]float64, error) {
	var daftar []models.Absensi
	err := models.DB.Where("pegawai_id = ?", pegawaiId).
		Order("id desc").Limit(batas).Find(&daftar).Error
	if err != nil {
		return nil, err
	}

	var riwayat [][2]float64
	for _, absensi := range daftar {
		saat := absensi.WaktuAbsen
		hari := int(saat.Weekday())
		if hari == 0 {
			hari = 7
		}
		menit := float64(saat.Hour()*60 + saat.Minute())
		riwayat = append(riwayat, [2]float64{float64(hari), menit})
	}
	return riwayat, nil
}
