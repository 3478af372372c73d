package repository

import "studyquest_backend/internal/model"

// 首次启动时的示例数据

func InitialProfile() model.UserProfile {
	return model.UserProfile{
		Nickname:       "학생",
		Level:          1,
		CurrentXP:      0,
		RequiredXP:     100,
		Coins:          50,
		TotalStudyTime: 120,
		Streak:         3,
		CharacterStage: model.StageEgg,
		EquippedItems:  []string{},
		OwnedItems:     []string{},
	}
}

func InitialTasks(date string) []model.TaskItem {
	return []model.TaskItem{
		{ID: "1", Title: "수학 수업", Subtitle: "이차방정식", Category: model.CategorySchool, IsCompleted: true, Date: date},
		{ID: "2", Title: "영어 학원", Subtitle: "문법 5단원", Category: model.CategoryAcademy, Date: date},
		{ID: "3", Title: "과학 자습", Subtitle: "물리 문제 풀이", TargetAmount: "p.12-15", Category: model.CategorySelf, Date: date},
	}
}

func InitialTimeTable() model.TimeTable {
	return model.TimeTable{
		model.Mon: {"국어", "수학", "영어", "과학", "체육", "역사", "자습"},
		model.Tue: {"수학", "영어", "음악", "사회", "국어", "과학", "동아리"},
		model.Wed: {"영어", "수학", "도덕", "미술", "체육", "자습", ""},
		model.Thu: {"과학", "역사", "국어", "수학", "기술", "영어", "진로"},
		model.Fri: {"사회", "과학", "수학", "영어", "국어", "체육", "학급"},
	}
}

func InitialState(date string) State {
	return State{
		Profile:   InitialProfile(),
		Tasks:     InitialTasks(date),
		TimeTable: InitialTimeTable(),
		Sessions:  []model.StudySession{},
	}
}

func DefaultCatalog() []model.ShopItem {
	return []model.ShopItem{
		{ID: "1", Name: "마법사 모자", Price: 100, Emoji: "🎩", Type: model.ItemHat},
		{ID: "2", Name: "멋진 안경", Price: 150, Emoji: "🕶️", Type: model.ItemAccessory},
		{ID: "3", Name: "황금 왕관", Price: 500, Emoji: "👑", Type: model.ItemHat},
		{ID: "4", Name: "모닝 커피", Price: 50, Emoji: "☕", Type: model.ItemAccessory},
	}
}

func WeeklyStats() []model.DailyStat {
	return []model.DailyStat{
		{Day: "월", Minutes: 120},
		{Day: "화", Minutes: 90},
		{Day: "수", Minutes: 150},
		{Day: "목", Minutes: 60},
		{Day: "금", Minutes: 180},
		{Day: "토", Minutes: 240},
		{Day: "일", Minutes: 120},
	}
}

func SubjectStats() []model.SubjectStat {
	return []model.SubjectStat{
		{Subject: "수학", Value: 400, Color: "#a3e635"},
		{Subject: "영어", Value: 300, Color: "#3b82f6"},
		{Subject: "과학", Value: 300, Color: "#a855f7"},
		{Subject: "역사", Value: 200, Color: "#f97316"},
	}
}
