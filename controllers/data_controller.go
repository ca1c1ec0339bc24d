package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DataController struct {
	History *services.HistoryService
}

func NewDataController(history *services.HistoryService) *DataController {
	return &DataController{History: history}
}

func (dc *DataController) Export(c *gin.Context) {
	snap, err := dc.History.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (dc *DataController) Import(c *gin.Context) {
	var snap services.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot"})
		return
	}
	if snap.Meals == nil && snap.Summaries == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "snapshot has no meals or summaries"})
		return
	}
	if err := dc.History.Import(c.Request.Context(), &snap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": true})
}

// RebuildSummaries recomputes the day rollups from the meal log, repairing
// drift after a partial import.
func (dc *DataController) RebuildSummaries(c *gin.Context) {
	if err := dc.History.RebuildSummaries(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rebuilt": true})
}
