package api

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	db "accountservice/db/sqlc"
	"accountservice/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Server struct {
	config util.Config
	store  db.Store
	router *gin.Engine
}

func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func NewServer(config util.Config, store db.Store) (*Server, error) {
	server := &Server{config: config, store: store}

	validate, ok := binding.Validator.Engine().(*validator.Validate)

	if !ok {
		return nil, fmt.Errorf("could not access the request validator engine")
	}

	// validation errors must report JSON field names, not struct field names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	server.setupRouter()

	return server, nil
}

func (server *Server) setupRouter() {
	router := gin.Default()

	router.Use(requestID())

	router.GET("/", server.index)
	router.GET("/health", server.health)

	router.POST("/accounts", server.createAccount)
	router.GET("/accounts", server.listAccounts)
	router.GET("/accounts/:id", server.getAccount)
	router.PUT("/accounts/:id", server.updateAccount)
	router.DELETE("/accounts/:id", server.deleteAccount)

	// a known path with an unsupported verb must answer 405, not 404
	router.HandleMethodNotAllowed = true

	router.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	server.router = router
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
