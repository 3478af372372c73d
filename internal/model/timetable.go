package model

// PeriodsPerDay 每天的课时数
const PeriodsPerDay = 7

// Weekday 课表中的星期
type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
)

// Weekdays 课表的星期顺序
var Weekdays = []Weekday{Mon, Tue, Wed, Thu, Fri}

func (d Weekday) IsValid() bool {
	switch d {
	case Mon, Tue, Wed, Thu, Fri:
		return true
	default:
		return false
	}
}

// TimeTable 每个星期对应 7 节课的科目名称，空字符串表示未安排
type TimeTable map[Weekday][]string

// Clone 深拷贝
func (t TimeTable) Clone() TimeTable {
	c := make(TimeTable, len(t))
	for day, slots := range t {
		c[day] = append(make([]string, 0, len(slots)), slots...)
	}
	return c
}
