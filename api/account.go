package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	db "accountservice/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const dateJoinedLayout = "2006-01-02"

// accountRequest is the payload for both POST and PUT. It deliberately has no
// id field: the path segment is the only source of identity.
type accountRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
	DateJoined  string  `json:"date_joined" binding:"omitempty,datetime=2006-01-02"`
}

func (req accountRequest) phoneNumber() sql.NullString {
	if req.PhoneNumber == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *req.PhoneNumber, Valid: true}
}

// dateJoined returns the parsed date_joined, defaulting to today when absent
func (req accountRequest) dateJoined() (time.Time, error) {
	if req.DateJoined == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Parse(dateJoinedLayout, req.DateJoined)
}

type accountResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	DateJoined  string  `json:"date_joined"`
}

func formatAccountResponse(dbAccount db.Account) accountResponse {
	response := accountResponse{
		ID:         dbAccount.ID,
		Name:       dbAccount.Name,
		Email:      dbAccount.Email,
		Address:    dbAccount.Address,
		DateJoined: dbAccount.DateJoined.Format(dateJoinedLayout),
	}

	if dbAccount.PhoneNumber.Valid {
		phoneNumber := dbAccount.PhoneNumber.String
		response.PhoneNumber = &phoneNumber
	}

	return response
}

// validationErrorResponse lists the offending JSON fields of a rejected payload
func validationErrorResponse(err error) gin.H {
	var validationErrs validator.ValidationErrors

	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))

		for _, fieldErr := range validationErrs {
			fields = append(fields, fieldErr.Field())
		}

		return gin.H{"error": "invalid account payload", "fields": fields}
	}

	return errorResponse(err)
}

// accountIDFromPath parses the :id segment. A non-numeric id is handled by
// the callers the same way as an unknown one: 404.
func accountIDFromPath(ctx *gin.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func (server *Server) createAccount(ctx *gin.Context) {
	if ctx.ContentType() != "application/json" {
		ctx.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Content-Type must be application/json"})
		return
	}

	var req accountRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	dateJoined, err := req.dateJoined()

	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	newAccount, err := server.store.CreateAccount(ctx, db.CreateAccountParams{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.phoneNumber(),
		DateJoined:  dateJoined,
	})

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.Header("Location", fmt.Sprintf("/accounts/%d", newAccount.ID))
	ctx.JSON(http.StatusCreated, formatAccountResponse(newAccount))
}

func (server *Server) listAccounts(ctx *gin.Context) {
	foundAccounts, err := server.store.ListAccounts(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	accounts := make([]accountResponse, 0, len(foundAccounts))

	for _, foundAccount := range foundAccounts {
		accounts = append(accounts, formatAccountResponse(foundAccount))
	}

	ctx.JSON(http.StatusOK, accounts)
}

func (server *Server) getAccount(ctx *gin.Context) {
	id, err := accountIDFromPath(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(err))
		return
	}

	foundAccount, err := server.store.GetAccount(ctx, id)

	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, formatAccountResponse(foundAccount))
}

func (server *Server) updateAccount(ctx *gin.Context) {
	id, err := accountIDFromPath(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(err))
		return
	}

	// existence is checked before the body is even parsed
	if _, err := server.store.GetAccount(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	var req accountRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	dateJoined, err := req.dateJoined()

	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	updatedAccount, err := server.store.ReplaceAccountTx(ctx, db.ReplaceAccountTxParams{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.phoneNumber(),
		DateJoined:  dateJoined,
	})

	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, formatAccountResponse(updatedAccount))
}

func (server *Server) deleteAccount(ctx *gin.Context) {
	id, err := accountIDFromPath(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(err))
		return
	}

	if _, err := server.store.DeleteAccount(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}
