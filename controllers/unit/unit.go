package unitcontroller

import (
	"net/http"

	"github.com/echal/gembira-sub000/models"

	"github.com/gin-gonic/gin"
)

func GetUnit(c *gin.Context) {
	var unit []models.Unit

	if err := models.DB.Order("nama asc").Find(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Unit": unit})
}
