package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	name          string
	studentNumber string
}

func NewMeHandler(name, studentNumber string) *MeHandler {
	return &MeHandler{name: name, studentNumber: studentNumber}
}

func (h *MeHandler) Me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"name":           h.name,
		"student_number": h.studentNumber,
	})
}
