package middlewares

import (
	"net/http"
	"strings"

	"github.com/echal/gembira-sub000/config"
	"github.com/echal/gembira-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

func ambilClaims(c *gin.Context) (*config.JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Peringatan": "Silahkan Login Terlebih Dahulu!"})
		return nil, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Peringatan": "Silahkan Login Terlebih Dahulu!"})
		return nil, false
	}

	claims := &config.JWTClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.NewValidationError("Metode Signing Tidak Valid", jwt.ValidationErrorSignatureInvalid)
		}
		return config.JWT_KEY, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Error": "Token Tidak Valid atau Sudah Kedaluwarsa!"})
		return nil, false
	}
	return claims, true
}

// AuthMiddleware memuat pegawai dari token dan menaruhnya di context
// sebagai currentUser.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ambilClaims(c)
		if !ok {
			return
		}
		if claims.Peran != "pegawai" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"Error": "Token Bukan Milik Pegawai!"})
			return
		}

		var pegawai models.Pegawai
		err := models.DB.Preload("Unit").First(&pegawai, claims.Id).Error
		if err != nil || pegawai.IsDeleted != 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Error": "Pengguna Tidak Ditemukan!"})
			return
		}
		c.Set("currentUser", pegawai)
		c.Next()
	}
}

// AdminMiddleware memuat admin dari token dan menaruhnya di context
// sebagai currentAdmin.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ambilClaims(c)
		if !ok {
			return
		}
		if claims.Peran != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"Error": "Butuh Akses Admin!"})
			return
		}

		var admin models.Admin
		if err := models.DB.First(&admin, claims.Id).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"Error": "Admin Tidak Ditemukan!"})
			return
		}
		c.Set("currentAdmin", admin)
		c.Next()
	}
}
