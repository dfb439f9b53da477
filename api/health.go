package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (server *Server) index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"name":    "Account REST API Service",
		"version": "1.0",
		"paths":   gin.H{"accounts": "/accounts"},
	})
}

func (server *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
}
