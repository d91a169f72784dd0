package authcontroller

import (
	"net/http"
	"time"

	"github.com/echal/gembira-sub000/config"
	"github.com/echal/gembira-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func terbitkanToken(id int64, nama, peran string) (string, error) {
	expTime := time.Now().Add(12 * time.Hour)
	claims := &config.JWTClaims{
		Id:    id,
		Nama:  nama,
		Peran: peran,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "gembira",
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}
	deklarasi := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return deklarasi.SignedString(config.JWT_KEY)
}

func LoginPegawai(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": err.Error()})
		return
	}

	var pegawai models.Pegawai
	if err := models.DB.Where("username = ? AND is_deleted = 0", input.Username).First(&pegawai).Error; err != nil {
		switch err {
		case gorm.ErrRecordNotFound:
			c.JSON(http.StatusUnauthorized, gin.H{"Message": "Username atau Password Tidak Sesuai"})
			return
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
			return
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pegawai.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Message": "Username atau Password Tidak Sesuai"})
		return
	}

	token, err := terbitkanToken(pegawai.Id, pegawai.Nama, "pegawai")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Login Berhasil!", "Token": token})
}

func LoginAdmin(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Message": err.Error()})
		return
	}

	var admin models.Admin
	if err := models.DB.Where("username = ?", input.Username).First(&admin).Error; err != nil {
		switch err {
		case gorm.ErrRecordNotFound:
			c.JSON(http.StatusUnauthorized, gin.H{"Message": "Username atau Password Tidak Sesuai"})
			return
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
			return
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Message": "Username atau Password Tidak Sesuai"})
		return
	}

	token, err := terbitkanToken(admin.Id, admin.Nama, "admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Login Berhasil!", "Token": token})
}
