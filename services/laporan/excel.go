package laporanservice

import (
	"fmt"

	"github.com/echal/gembira-sub000/models"
	"github.com/xuri/excelize/v2"
)

// BukuRekapUnit menyusun rekap bulanan unit menjadi satu berkas XLSX
// untuk diunduh admin.
func BukuRekapUnit(laporan models.LaporanUnit) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Rekap"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("ganti nama sheet: %w", err)
	}

	judul := fmt.Sprintf("Rekap Kehadiran %s - %s", laporan.NamaUnit, laporan.Bulan)
	if err := f.SetCellValue(sheet, "A1", judul); err != nil {
		return nil, err
	}

	kepala := []string{"NIP", "Nama", "Target", "Hadir", "Alpha", "Persentase", "Status"}
	for i, teks := range kepala {
		sel, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheet, sel, teks); err != nil {
			return nil, err
		}
	}

	for baris, rekap := range laporan.Rincian {
		nilai := []interface{}{
			rekap.Nip,
			rekap.Nama,
			rekap.TargetKehadiran,
			rekap.TotalHadir,
			rekap.TotalAlpha,
			rekap.Persentase,
			rekap.Status,
		}
		for kolom, v := range nilai {
			sel, _ := excelize.CoordinatesToCellName(kolom+1, baris+4)
			if err := f.SetCellValue(sheet, sel, v); err != nil {
				return nil, err
			}
		}
	}

	barisTotal := len(laporan.Rincian) + 5
	sel, _ := excelize.CoordinatesToCellName(1, barisTotal)
	if err := f.SetCellValue(sheet, sel, fmt.Sprintf("Persentase Unit: %.1f%%", laporan.Persentase)); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return nil, err
	}
	return f, nil
}
