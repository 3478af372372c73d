package model

// Category 任务分类
type Category string

const (
	CategorySchool  Category = "School"
	CategoryAcademy Category = "Academy"
	CategorySelf    Category = "Self"
)

// Categories 按规划页展示顺序排列
var Categories = []Category{CategorySchool, CategoryAcademy, CategorySelf}

func (c Category) IsValid() bool {
	switch c {
	case CategorySchool, CategoryAcademy, CategorySelf:
		return true
	default:
		return false
	}
}

// Label 分类显示名称
func (c Category) Label() string {
	switch c {
	case CategorySchool:
		return "학교 수업"
	case CategoryAcademy:
		return "학원"
	case CategorySelf:
		return "자습"
	default:
		return string(c)
	}
}

// TaskItem 待办事项
// swagger:model TaskItem
type TaskItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`     // 教材名称等
	TargetAmount string   `json:"targetAmount,omitempty"` // 例如 p.30-40
	Category     Category `json:"category"`
	IsCompleted  bool     `json:"isCompleted"`
	Date         string   `json:"date"` // YYYY-MM-DD，仅作展示
}

// TaskDraft 新建任务的输入
type TaskDraft struct {
	Title        string
	Subtitle     string
	TargetAmount string
	Category     Category
}
