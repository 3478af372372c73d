package engine

import "studyquest_backend/internal/model"

// PurchaseItem 金币足够时扣款并装备道具，否则原样返回。
// 同一道具可以被重复追加到 EquippedItems，是否已拥有由 OwnedItems 判断。
func PurchaseItem(profile model.UserProfile, item model.ShopItem) (model.UserProfile, bool) {
	if profile.Coins < item.Price {
		return profile, false
	}
	next := profile.Clone()
	next.Coins -= item.Price
	next.EquippedItems = append(next.EquippedItems, item.Emoji)
	if !next.Owns(item.ID) {
		next.OwnedItems = append(next.OwnedItems, item.ID)
	}
	return next, true
}

// CreditCoins 入账金币，amount 为 0 时不复制
func CreditCoins(profile model.UserProfile, amount int) model.UserProfile {
	if amount <= 0 {
		return profile
	}
	next := profile.Clone()
	next.Coins += amount
	return next
}
