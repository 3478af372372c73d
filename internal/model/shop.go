package model

// ItemType 商品类型
type ItemType string

const (
	ItemHat       ItemType = "hat"
	ItemAccessory ItemType = "accessory"
	ItemBg        ItemType = "bg"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemHat, ItemAccessory, ItemBg:
		return true
	default:
		return false
	}
}

// ShopItem 商店中的装饰道具，目录只读
// swagger:model ShopItem
type ShopItem struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Emoji string   `json:"emoji"`
	Type  ItemType `json:"type"`
}
