package model

// CharacterStage 角色进化阶段，按学习总时长单向推进
type CharacterStage string

const (
	StageEgg     CharacterStage = "Egg"
	StageChick   CharacterStage = "Chick"
	StageOwl     CharacterStage = "Owl"
	StagePhoenix CharacterStage = "Phoenix"
)

func (s CharacterStage) IsValid() bool {
	switch s {
	case StageEgg, StageChick, StageOwl, StagePhoenix:
		return true
	default:
		return false
	}
}

// Rank 返回阶段序号，用于比较先后；未知阶段返回 -1
func (s CharacterStage) Rank() int {
	switch s {
	case StageEgg:
		return 0
	case StageChick:
		return 1
	case StageOwl:
		return 2
	case StagePhoenix:
		return 3
	default:
		return -1
	}
}

// Next 返回下一阶段，Phoenix 为终态
func (s CharacterStage) Next() (CharacterStage, bool) {
	switch s {
	case StageEgg:
		return StageChick, true
	case StageChick:
		return StageOwl, true
	case StageOwl:
		return StagePhoenix, true
	default:
		return s, false
	}
}

// Emoji 角色形象
func (s CharacterStage) Emoji() string {
	switch s {
	case StageChick:
		return "🐣"
	case StageOwl:
		return "🦉"
	case StagePhoenix:
		return "🦅"
	default:
		return "🥚"
	}
}

// DisplayName 阶段显示名称
func (s CharacterStage) DisplayName() string {
	switch s {
	case StageEgg:
		return "알"
	case StageChick:
		return "병아리"
	case StageOwl:
		return "부엉이"
	case StagePhoenix:
		return "불사조"
	default:
		return string(s)
	}
}

// UserProfile 学习者的游戏化状态
// swagger:model UserProfile
type UserProfile struct {
	Nickname       string         `json:"nickname"`
	Level          int            `json:"level"`
	CurrentXP      int            `json:"currentXp"`
	RequiredXP     int            `json:"requiredXp"`
	Coins          int            `json:"coins"`
	TotalStudyTime int            `json:"totalStudyTime"` // 分钟
	Streak         int            `json:"streak"`
	CharacterStage CharacterStage `json:"characterStage"`
	EquippedItems  []string       `json:"equippedItems"` // 按购买顺序追加的道具标识，可重复
	OwnedItems     []string       `json:"ownedItems"`    // 已拥有的商品ID，不重复
}

// Clone 深拷贝，切片不与原值共享
func (p UserProfile) Clone() UserProfile {
	c := p
	c.EquippedItems = append(make([]string, 0, len(p.EquippedItems)), p.EquippedItems...)
	c.OwnedItems = append(make([]string, 0, len(p.OwnedItems)), p.OwnedItems...)
	return c
}

// Owns 是否已拥有指定商品
func (p UserProfile) Owns(itemID string) bool {
	for _, id := range p.OwnedItems {
		if id == itemID {
			return true
		}
	}
	return false
}
