package models

// LaporanBulanan merangkum kehadiran satu pegawai dalam satu bulan.
// Target dihitung dari seluruh jadwal aktif: setiap pasangan
// jadwal-hari yang rentang harinya mencakup tanggal itu adalah satu
// kewajiban hadir.
type LaporanBulanan struct {
	Bulan           string  `json:"bulan"`
	TargetKehadiran int     `json:"target_kehadiran"`
	TotalHadir      int     `json:"total_hadir"`
	TotalAlpha      int     `json:"total_alpha"`
	Persentase      float64 `json:"persentase"`
	Status          string  `json:"status"`
}

type LaporanPegawai struct {
	PegawaiId int64  `json:"pegawai_id"`
	Nip       string `json:"nip"`
	Nama      string `json:"nama"`
	LaporanBulanan
}

// LaporanUnit menggabungkan laporan per pegawai; persentase unit
// dihitung dari total hadir dibagi total target seluruh pegawai,
// bukan rata-rata persentase.
type LaporanUnit struct {
	UnitId     int64            `json:"unit_id"`
	NamaUnit   string           `json:"nama_unit"`
	Bulan      string           `json:"bulan"`
	Persentase float64          `json:"persentase"`
	Rincian    []LaporanPegawai `json:"rincian"`
}

type LaporanHarian struct {
	Tanggal    string `json:"tanggal"`
	NamaHari   string `json:"nama_hari"`
	JadwalId   int64  `json:"jadwal_id"`
	NamaJadwal string `json:"nama_jadwal"`
	Status     string `json:"status"`
}
