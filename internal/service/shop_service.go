package service

import (
	"context"
	"fmt"

	"studyquest_backend/internal/engine"
	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/util"
	"studyquest_backend/pkg/logger"
	"studyquest_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type ShopService struct {
	Store    *repository.Store
	UserRepo *repository.UserRepository
	ShopRepo *repository.ShopRepository
	Hub      *NotificationHub
}

func NewShopService(store *repository.Store, userRepo *repository.UserRepository, shopRepo *repository.ShopRepository, hub *NotificationHub) *ShopService {
	return &ShopService{
		Store:    store,
		UserRepo: userRepo,
		ShopRepo: shopRepo,
		Hub:      hub,
	}
}

// PurchaseResult 购买被拒绝时 Purchased 为 false，Reason 说明原因
type PurchaseResult struct {
	Purchased bool              `json:"purchased"`
	Reason    string            `json:"reason,omitempty"`
	Item      model.ShopItem    `json:"item"`
	Profile   model.UserProfile `json:"profile"`
}

type ShopListing struct {
	model.ShopItem
	Owned      bool `json:"owned"`
	Affordable bool `json:"affordable"`
}

// CharacterView 角色页：当前形象、进化进度和商店
type CharacterView struct {
	Nickname      string               `json:"nickname"`
	Level         int                  `json:"level"`
	Coins         int                  `json:"coins"`
	Stage         engine.StageProgress `json:"stage"`
	EquippedItems []string             `json:"equippedItems"`
	OwnedItems    []string             `json:"ownedItems"`
	Items         []ShopListing        `json:"items"`
}

func (s *ShopService) Character() CharacterView {
	profile := s.UserRepo.GetProfile()
	catalog := s.ShopRepo.FindAll()

	items := make([]ShopListing, 0, len(catalog))
	for _, item := range catalog {
		items = append(items, ShopListing{
			ShopItem:   item,
			Owned:      profile.Owns(item.ID),
			Affordable: profile.Coins >= item.Price,
		})
	}
	return CharacterView{
		Nickname:      profile.Nickname,
		Level:         profile.Level,
		Coins:         profile.Coins,
		Stage:         engine.NextStageInfo(profile),
		EquippedItems: profile.EquippedItems,
		OwnedItems:    profile.OwnedItems,
		Items:         items,
	}
}

func (s *ShopService) Buy(ctx context.Context, itemID string) (*PurchaseResult, error) {
	item, ok := s.ShopRepo.FindByID(itemID)
	if !ok {
		return nil, fmt.Errorf("buy %s: %w", itemID, util.ErrItemNotFound)
	}

	res := PurchaseResult{Item: item}
	err := s.Store.Update(func(st *repository.State) error {
		if st.Profile.Owns(item.ID) {
			res.Reason = util.ReasonOwned
			res.Profile = st.Profile.Clone()
			return nil
		}
		profile, purchased := engine.PurchaseItem(st.Profile, item)
		if !purchased {
			res.Reason = util.ReasonInsufficientCoins
			res.Profile = st.Profile.Clone()
			return nil
		}
		st.Profile = profile
		res.Purchased = true
		res.Profile = profile.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := "purchased"
	if !res.Purchased {
		result = res.Reason
	}
	monitoring.Purchases.WithLabelValues(item.ID, result).Inc()

	if !res.Purchased {
		logger.Log.Info("Purchase declined", zap.String("item", item.ID), zap.String("reason", res.Reason))
		return &res, nil
	}

	monitoring.CoinBalance.Set(float64(res.Profile.Coins))
	logger.Log.Info("Item purchased",
		zap.String("item", item.ID),
		zap.Int("price", item.Price),
		zap.Int("coins", res.Profile.Coins),
	)
	if s.Hub != nil {
		s.Hub.Publish(model.EventItemPurchased, fmt.Sprintf("%s %s 구매 완료", item.Emoji, item.Name), map[string]any{
			"itemId": item.ID,
			"price":  item.Price,
		})
	}
	return &res, nil
}
