package main

import (
	"log"
	"os"
	"time"

	"github.com/echal/gembira-sub000/config"
	absencontroller "github.com/echal/gembira-sub000/controllers/absen"
	anomalicontroller "github.com/echal/gembira-sub000/controllers/anomali"
	authcontroller "github.com/echal/gembira-sub000/controllers/auth"
	jadwalcontroller "github.com/echal/gembira-sub000/controllers/jadwal"
	laporancontrollers "github.com/echal/gembira-sub000/controllers/laporan"
	"github.com/echal/gembira-sub000/controllers/scheduler"
	unitcontroller "github.com/echal/gembira-sub000/controllers/unit"
	validasicontroller "github.com/echal/gembira-sub000/controllers/validasi"
	"github.com/echal/gembira-sub000/middlewares"
	"github.com/echal/gembira-sub000/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	models.ConnectDatabase()
	config.ConnectRedis()

	router := gin.Default()
	router.MaxMultipartMemory = 8 << 20

	//Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")
	{
		v1.POST("/login", authcontroller.LoginPegawai)
		v1.POST("/admin/login", authcontroller.LoginAdmin)

		api := v1.Group("/api")
		api.Use(middlewares.AuthMiddleware())
		{
			api.POST("/absensi", absencontroller.ScanAbsensiHandler)
			api.GET("/jadwal/terbuka", absencontroller.GetJadwalTerbuka)
			api.GET("/uhistori", absencontroller.GetHistoryUser)
			api.GET("/laporan", laporancontrollers.GetLaporan)
			api.GET("/laporan/harian", laporancontrollers.LaporanAbsensiHarian)
		}

		adminApi := v1.Group("/admin/api")
		adminApi.Use(middlewares.AdminMiddleware())
		{
			adminApi.GET("/jadwal", jadwalcontroller.GetJadwal)
			adminApi.POST("/jadwal", jadwalcontroller.CreateJadwal)
			adminApi.PUT("/jadwal/:id", jadwalcontroller.UpdateJadwal)
			adminApi.PUT("/jadwal/:id/nonaktif", jadwalcontroller.NonaktifkanJadwal)
			adminApi.PUT("/jadwal/:id/kodeqr", jadwalcontroller.PutarKodeQr)

			adminApi.GET("/validasi", validasicontroller.GetDaftarValidasi)
			adminApi.PUT("/validasi/:id/setujui", validasicontroller.SetujuiHandler)
			adminApi.PUT("/validasi/:id/tolak", validasicontroller.TolakHandler)
			adminApi.POST("/validasi/massal", validasicontroller.MassalHandler)

			adminApi.GET("/unit", unitcontroller.GetUnit)
			adminApi.GET("/laporan/pegawai/:pegawai_id", laporancontrollers.GetLaporanPegawai)
			adminApi.GET("/laporan/unit/:unit_id", laporancontrollers.GetLaporanUnit)
			adminApi.GET("/laporan/unit/:unit_id/unduh", laporancontrollers.UnduhRekapUnit)

			adminApi.GET("/anomali/:pegawai_id", anomalicontroller.PeriksaAnomaliHandler)
		}
	}

	// Pengingat validasi tertunda, sekali per jam.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			scheduler.PengingatValidasiTertunda()
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server is running on port %s\n", port)

	router.Run(":" + port)
}
