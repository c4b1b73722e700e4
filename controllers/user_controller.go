package controllers

import (
	"net/http"
	"strconv"

	"gin-accounts/dto"
	"gin-accounts/repositories"
	"gin-accounts/services"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	FindById(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindById(ctx *gin.Context) {
	ref, ok := userRefFromPath(ctx)
	if !ok {
		return
	}

	user, err := c.service.Find(ref)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (c *UserController) Update(ctx *gin.Context) {
	ref, ok := userRefFromPath(ctx)
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.Update(ref, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (c *UserController) Delete(ctx *gin.Context) {
	ref, ok := userRefFromPath(ctx)
	if !ok {
		return
	}

	user, err := c.service.Delete(ref)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func userRefFromPath(ctx *gin.Context) (repositories.UserRef, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return repositories.UserRef{}, false
	}
	return repositories.ByID(uint(id)), true
}
