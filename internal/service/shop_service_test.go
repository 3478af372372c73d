package service

import (
	"context"
	"testing"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopServiceBuy(t *testing.T) {
	ctx := context.Background()

	t.Run("purchase with exact balance", func(t *testing.T) {
		f := newFixture(t)
		sub := f.hub.Subscribe()
		defer sub.Close()

		res, err := f.shop.Buy(ctx, "4")
		require.NoError(t, err)
		assert.True(t, res.Purchased)
		assert.Equal(t, 0, res.Profile.Coins)
		assert.Equal(t, []string{"☕"}, res.Profile.EquippedItems)
		assert.Equal(t, []string{"4"}, res.Profile.OwnedItems)
		assert.Equal(t, []model.EventType{model.EventItemPurchased}, eventTypes(drain(sub)))
	})

	t.Run("insufficient coins", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.shop.Buy(ctx, "3")
		require.NoError(t, err)
		assert.False(t, res.Purchased)
		assert.Equal(t, util.ReasonInsufficientCoins, res.Reason)
		assert.Equal(t, 50, f.store.Snapshot().Profile.Coins)
	})

	t.Run("owned item is declined without charge", func(t *testing.T) {
		f := newFixture(t)
		f.setProfile(t, func(p *model.UserProfile) { p.Coins = 1000 })

		_, err := f.shop.Buy(ctx, "1")
		require.NoError(t, err)
		res, err := f.shop.Buy(ctx, "1")
		require.NoError(t, err)
		assert.False(t, res.Purchased)
		assert.Equal(t, util.ReasonOwned, res.Reason)
		assert.Equal(t, 900, f.store.Snapshot().Profile.Coins)
		assert.Equal(t, []string{"🎩"}, f.store.Snapshot().Profile.EquippedItems)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.shop.Buy(ctx, "99")
		assert.ErrorIs(t, err, util.ErrItemNotFound)
	})
}

func TestShopServiceCharacter(t *testing.T) {
	f := newFixture(t)
	f.setProfile(t, func(p *model.UserProfile) {
		p.Coins = 120
		p.OwnedItems = []string{"4"}
	})

	view := f.shop.Character()
	assert.Equal(t, 120, view.Coins)
	assert.Equal(t, "🥚", view.Stage.Emoji)
	assert.Equal(t, "병아리", view.Stage.NextName)
	require.Len(t, view.Items, 4)

	byID := map[string]ShopListing{}
	for _, item := range view.Items {
		byID[item.ID] = item
	}
	assert.True(t, byID["1"].Affordable)
	assert.False(t, byID["2"].Affordable)
	assert.True(t, byID["4"].Owned)
	assert.False(t, byID["1"].Owned)
}
