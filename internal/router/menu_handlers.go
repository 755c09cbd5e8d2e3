package router

import (
	"strconv"

	"skyhi-pos/internal/middleware"
	"skyhi-pos/internal/model"
	"skyhi-pos/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func listMenu(svc *service.MenuService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondErr(c, log, err)
			return
		}
		// Cost is staff-only; strip it unless the caller is an admin.
		if user, ok := middleware.CurrentUser(c); !ok || !user.IsAdmin() {
			stripped := make([]model.MenuItem, len(items))
			for i, it := range items {
				it.CostCents = 0
				stripped[i] = it
			}
			items = stripped
		}
		respondOK(c, gin.H{"menu_items": items})
	}
}

type menuItemReq struct {
	Name        *string           `json:"name"`
	Category    *model.Category   `json:"category"`
	PriceCents  *int64            `json:"price_cents"`
	CostCents   *int64            `json:"cost_cents"`
	Description *string           `json:"description"`
	Emoji       *string           `json:"emoji"`
	Status      *model.ItemStatus `json:"status"`
}

func createMenuItem(svc *service.MenuService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menuItemReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		in := service.MenuItemInput{}
		if req.Name != nil {
			in.Name = *req.Name
		}
		if req.Category != nil {
			in.Category = *req.Category
		}
		if req.PriceCents != nil {
			in.PriceCents = *req.PriceCents
		}
		if req.CostCents != nil {
			in.CostCents = *req.CostCents
		}
		if req.Description != nil {
			in.Description = *req.Description
		}
		if req.Emoji != nil {
			in.Emoji = *req.Emoji
		}
		if req.Status != nil {
			in.Status = *req.Status
		}
		item, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondCreated(c, gin.H{"menu_item": item})
	}
}

func updateMenuItem(svc *service.MenuService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req menuItemReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		item, err := svc.Update(c.Request.Context(), id, service.MenuItemPatch{
			Name:        req.Name,
			Category:    req.Category,
			PriceCents:  req.PriceCents,
			CostCents:   req.CostCents,
			Description: req.Description,
			Emoji:       req.Emoji,
			Status:      req.Status,
		})
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"menu_item": item})
	}
}

func deleteMenuItem(svc *service.MenuService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"deleted": id})
	}
}

// paramID parses a positive uint path parameter, answering 400 itself on
// garbage input.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
