package router

import (
	"skyhi-pos/internal/middleware"
	"skyhi-pos/internal/model"
	"skyhi-pos/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func createOrder(svc *service.OrderService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OrderType model.OrderType `json:"order_type" binding:"required"`
			Tables    []int           `json:"tables"`
			Items     []struct {
				MenuItemID uint `json:"menu_item_id"`
				Quantity   int  `json:"quantity"`
			} `json:"items" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		user, _ := middleware.CurrentUser(c)

		in := service.CreateOrderInput{
			OrderType: req.OrderType,
			Tables:    req.Tables,
			Items:     make([]service.CreateOrderItem, 0, len(req.Items)),
		}
		for _, it := range req.Items {
			in.Items = append(in.Items, service.CreateOrderItem{
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
			})
		}

		order, err := svc.Create(c.Request.Context(), user, in)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondCreated(c, gin.H{"order": order})
	}
}

func myOrders(svc *service.OrderService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		orders, err := svc.ListMine(c.Request.Context(), user.ID)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"orders": orders})
	}
}

func allOrders(svc *service.OrderService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListAll(c.Request.Context())
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"orders": orders})
	}
}

func getOrder(svc *service.OrderService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		user, _ := middleware.CurrentUser(c)
		order, err := svc.Get(c.Request.Context(), user, id)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"order": order})
	}
}

func updateOrderStatus(svc *service.OrderService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req struct {
			Status model.OrderStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		order, err := svc.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"order": order})
	}
}

func deleteOrder(svc *service.OrderService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		user, _ := middleware.CurrentUser(c)
		if err := svc.Delete(c.Request.Context(), user, id); err != nil {
			respondErr(c, log, err)
			return
		}
		respondOK(c, gin.H{"deleted": id})
	}
}
