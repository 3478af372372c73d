package controller

import (
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ShopController struct {
	ShopService *service.ShopService
}

func NewShopController(shopService *service.ShopService) *ShopController {
	return &ShopController{ShopService: shopService}
}

// GetShop godoc
// @Summary 获取角色与商店
// @Description 角色进化进度、已拥有道具和商品列表
// @Tags 商店
// @Produce json
// @Success 200 {object} util.Response{data=service.CharacterView} "成功"
// @Router /api/shop [get]
func (c *ShopController) GetShop(ctx *gin.Context) {
	util.Success(ctx, c.ShopService.Character())
}

// BuyItem godoc
// @Summary 购买道具
// @Description 金币不足或已拥有时不扣款，返回 purchased=false 和原因
// @Tags 商店
// @Produce json
// @Param id path string true "商品ID"
// @Success 200 {object} util.Response{data=service.PurchaseResult} "成功"
// @Failure 404 {object} util.Response "商品不存在"
// @Router /api/shop/{id}/buy [post]
func (c *ShopController) BuyItem(ctx *gin.Context) {
	res, err := c.ShopService.Buy(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, res)
}
