package repository

import "studyquest_backend/internal/model"

// ShopRepository 商品目录在启动时确定，之后只读
type ShopRepository struct {
	items []model.ShopItem
}

func NewShopRepository(items []model.ShopItem) *ShopRepository {
	return &ShopRepository{items: append([]model.ShopItem(nil), items...)}
}

func (r *ShopRepository) FindAll() []model.ShopItem {
	return append([]model.ShopItem(nil), r.items...)
}

func (r *ShopRepository) FindByID(id string) (model.ShopItem, bool) {
	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.ShopItem{}, false
}
